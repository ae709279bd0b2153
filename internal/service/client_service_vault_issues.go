// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-mypass/internal/validators"
	"github.com/MKhiriev/go-mypass/models"
)

var (
	cardExpiryLayouts     = []string{"01/2006", "1/2006"}
	documentExpiryLayouts = []string{"2006-01-02", time.RFC3339}
)

// detectIssues scans items and returns one message per qualifying item, in
// item order.
func detectIssues(items []models.VaultItem, now time.Time) []string {
	var issues []string
	for _, item := range items {
		switch item.Type {
		case models.Login:
			if !validators.EvaluateStrength(item.Fields[models.FieldPassword]).Strong {
				issues = append(issues, fmt.Sprintf("Weak password detected for login item with URL: %s", item.Fields[models.FieldURL]))
			}
		case models.CreditCard:
			if cardExpired(item.Fields[models.FieldExpiryDate], now) {
				issues = append(issues, fmt.Sprintf("Credit card has expired: %s", item.Fields[models.FieldCardNumber]))
			}
		case models.IdentityDocument:
			if documentExpired(item.Fields[models.FieldExpiryDate], now) {
				issues = append(issues, fmt.Sprintf("Document has expired: %s", item.Fields[models.FieldDocumentType]))
			}
		}
	}
	return issues
}

// cardExpired reports whether a MM/YYYY expiry lies before the first day of
// the current month. A card is valid through its expiry month.
func cardExpired(value string, now time.Time) bool {
	value = strings.TrimSpace(value)
	for _, layout := range cardExpiryLayouts {
		expiry, err := time.ParseInLocation(layout, value, now.Location())
		if err != nil {
			continue
		}
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return expiry.Before(firstOfMonth)
	}
	return false
}

// documentExpired reports whether a document expiry lies before now. A
// MM/YYYY expiry means the end of that month.
func documentExpired(value string, now time.Time) bool {
	value = strings.TrimSpace(value)
	for _, layout := range documentExpiryLayouts {
		if expiry, err := time.ParseInLocation(layout, value, now.Location()); err == nil {
			return expiry.Before(now)
		}
	}
	for _, layout := range cardExpiryLayouts {
		if month, err := time.ParseInLocation(layout, value, now.Location()); err == nil {
			endOfMonth := month.AddDate(0, 1, 0).Add(-time.Nanosecond)
			return endOfMonth.Before(now)
		}
	}
	return false
}
