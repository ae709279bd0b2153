// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name string
		addr NetAddress
		want string
	}{
		{name: "empty", addr: NetAddress{}, want: ""},
		{name: "host and port", addr: NetAddress{Host: "localhost", Port: 8080}, want: "localhost:8080"},
		{name: "port only", addr: NetAddress{Port: 9000}, want: ":9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip", input: "127.0.0.1:9000", want: NetAddress{Host: "127.0.0.1", Port: 9000}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port too large", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestBindClientFlags(t *testing.T) {
	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	flags := BindClientFlags(fs)

	err := fs.Parse([]string{"-a", "http://vault:8443", "--auto-lock", "90s", "--state-dsn", "state.db", "-c", "cfg.json"})
	require.NoError(t, err)

	cfg := flags.Config()
	assert.Equal(t, "http://vault:8443", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 90*time.Second, cfg.Session.AutoLockTimeout)
	assert.Equal(t, "state.db", cfg.Storage.State.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestBindServerFlags(t *testing.T) {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	flags := BindServerFlags(fs)

	err := fs.Parse([]string{"--address", "127.0.0.1:9090", "-d", "postgres://u:p@db/mypass", "--log-level", "warn"})
	require.NoError(t, err)

	cfg := flags.Config()
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://u:p@db/mypass", cfg.Storage.DB.DSN)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

func TestBindServerFlags_RejectsBadAddress(t *testing.T) {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	BindServerFlags(fs)

	err := fs.Parse([]string{"--address", "nowhere"})
	assert.Error(t, err)
}

func TestBindGeneratorFlags(t *testing.T) {
	fs := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	flags := BindGeneratorFlags(fs)

	require.NoError(t, fs.Parse([]string{"-l", "32"}))
	assert.Equal(t, 32, flags.Config().Generator.Length)
}

func TestFlags_UnsetLeaveZeroValues(t *testing.T) {
	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	flags := BindClientFlags(fs)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, &StructuredConfig{}, flags.Config())
}
