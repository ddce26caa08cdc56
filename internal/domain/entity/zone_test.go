package entity

import (
	"errors"
	"testing"

	"github.com/lite-lake/simply-dns/internal/domain"
)

func TestZone_Validate(t *testing.T) {
	tests := []struct {
		name    string
		zone    Zone
		wantErr error
	}{
		{
			name:    "missing domain",
			zone:    Zone{Account: "main"},
			wantErr: domain.ErrInvalidDomain,
		},
		{
			name:    "malformed domain",
			zone:    Zone{Domain: "-bad-.example.com", Account: "main"},
			wantErr: domain.ErrInvalidDomain,
		},
		{
			name:    "missing account",
			zone:    Zone{Domain: "example.com"},
			wantErr: domain.ErrRequired,
		},
		{
			name: "invalid record",
			zone: Zone{
				Domain:  "example.com",
				Account: "main",
				Records: []RecordSpec{{Type: "A", Name: "www"}},
			},
			wantErr: domain.ErrRequired,
		},
		{
			name: "duplicate record key",
			zone: Zone{
				Domain:  "example.com",
				Account: "main",
				Records: []RecordSpec{
					{Type: "A", Name: "www", Data: "1.2.3.4"},
					{Type: "a", Name: "WWW", Data: "5.6.7.8"},
				},
			},
			wantErr: domain.ErrRecordConflict,
		},
		{
			name:    "valid minimal",
			zone:    Zone{Domain: "example.com", Account: "main"},
			wantErr: nil,
		},
		{
			name: "valid full",
			zone: Zone{
				Domain:  "example.com",
				Account: "main",
				Prune:   true,
				Records: []RecordSpec{
					{Type: "A", Name: "www", Data: "1.2.3.4", TTL: intPtr(3600)},
					{Type: "MX", Name: "@", Data: "mail.example.com", Priority: intPtr(10)},
				},
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.zone.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestZone_RecordByKey(t *testing.T) {
	zone := Zone{
		Domain:  "example.com",
		Account: "main",
		Records: []RecordSpec{
			{Type: "A", Name: "www", Data: "1.2.3.4"},
			{Type: "TXT", Name: "@", Data: "v=spf1 -all"},
		},
	}

	if got := zone.RecordByKey("A:www"); got == nil || got.Data != "1.2.3.4" {
		t.Errorf("RecordByKey(A:www) = %v", got)
	}
	if got := zone.RecordByKey("AAAA:www"); got != nil {
		t.Errorf("RecordByKey(AAAA:www) = %v, want nil", got)
	}
}

func TestPruneExempt(t *testing.T) {
	tests := []struct {
		recordType string
		want       bool
	}{
		{"NS", true},
		{"ns", true},
		{"SOA", true},
		{"A", false},
		{"TXT", false},
	}

	for _, tt := range tests {
		t.Run(tt.recordType, func(t *testing.T) {
			if got := PruneExempt(tt.recordType); got != tt.want {
				t.Errorf("PruneExempt(%q) = %v, want %v", tt.recordType, got, tt.want)
			}
		})
	}
}
