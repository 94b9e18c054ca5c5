package config

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"complete", Config{BundlePath: "bundle", Keyword: "vm-00", PageSize: 100}, false},
		{"missing path", Config{Keyword: "vm-00", PageSize: 100}, true},
		{"missing keyword", Config{BundlePath: "bundle", PageSize: 100}, true},
		{"zero page size", Config{BundlePath: "bundle", Keyword: "vm-00"}, true},
		{"negative page size", Config{BundlePath: "bundle", Keyword: "vm-00", PageSize: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
