// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/mock"
	"github.com/MKhiriev/go-mypass/internal/validators"
	"github.com/MKhiriev/go-mypass/models"
)

func newTestGenerator(t *testing.T, ctrl *gomock.Controller) (*GeneratorModel, *mock.MockPasswordGenerator, *mock.MockClipboard) {
	t.Helper()
	gen := mock.NewMockPasswordGenerator(ctrl)
	clip := mock.NewMockClipboard(ctrl)
	return NewGeneratorModel(gen, clip, models.DefaultPasswordSpec()), gen, clip
}

func TestGeneratorModel_AdjustSpec(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, gen, _ := newTestGenerator(t, ctrl)

	spec := models.DefaultPasswordSpec()
	longer := spec
	longer.Length++
	noUpper := longer
	noUpper.Uppercase = false

	gomock.InOrder(
		gen.EXPECT().Generate(spec).Return("Abcdefghij1!", nil),
		gen.EXPECT().Generate(longer).Return("Abcdefghij1!x", nil),
		gen.EXPECT().Generate(noUpper).Return("abcdefghij1!x", nil),
	)

	_, _ = m.Update(openGeneratorMsg{back: pageVault})
	assert.Equal(t, "Abcdefghij1!", m.password)
	assert.Contains(t, m.View(), validators.StrengthOK.Message())

	_, _ = m.Update(runeKey("+"))
	assert.Equal(t, longer.Length, m.spec.Length)

	_, _ = m.Update(runeKey("u"))
	assert.Equal(t, "abcdefghij1!x", m.password)
	assert.Contains(t, m.View(), validators.StrengthNoUppercase.Message())

	_, cmd := m.Update(escKey)
	requireNavigate(t, cmd, pageVault)
}

func TestGeneratorModel_LengthBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, gen, _ := newTestGenerator(t, ctrl)
	m.spec.Length = minGeneratedLength

	_, _ = m.Update(runeKey("-"))
	assert.Equal(t, minGeneratedLength, m.spec.Length)

	gen.EXPECT().Generate(gomock.Any()).Times(0)
	m.spec.Length = maxGeneratedLength
	_, _ = m.Update(runeKey("+"))
	assert.Equal(t, maxGeneratedLength, m.spec.Length)
}

func TestGeneratorModel_Copy(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, clip := newTestGenerator(t, ctrl)
	m.password = "Abcdefghij1!"

	gomock.InOrder(
		clip.EXPECT().WriteAll("Abcdefghij1!").Return(nil),
		clip.EXPECT().WriteAll("Abcdefghij1!").Return(errors.New("no xclip")),
	)

	_, cmd := m.Update(runeKey("c"))
	assert.NotNil(t, cmd)
	assert.Equal(t, app.MsgCopied, m.status)

	_, _ = m.Update(runeKey("c"))
	assert.Empty(t, m.status)
	assert.Equal(t, app.MsgClipboardUnavailable, m.errMsg)
}

func TestGeneratorModel_CheckStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestGenerator(t, ctrl)

	_, _ = m.Update(tabKey)
	require.True(t, m.checking)

	// Class toggles are plain text while checking.
	for _, r := range []string{"s", "h", "o", "r", "t"} {
		_, _ = m.Update(runeKey(r))
	}
	assert.Equal(t, "short", m.check.Value())
	assert.True(t, m.spec.SpecialChars)
	assert.Contains(t, m.View(), validators.StrengthTooShort.Message())

	_, _ = m.Update(escKey)
	assert.False(t, m.checking)
}

func TestGeneratorModel_GenerateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, gen, _ := newTestGenerator(t, ctrl)

	gen.EXPECT().Generate(gomock.Any()).Return("", errors.New("length must be at least 1"))

	_, _ = m.Update(enterKey)
	assert.Equal(t, "length must be at least 1", m.errMsg)
}
