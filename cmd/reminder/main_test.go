package main

import "testing"

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    bool
		wantErr bool
	}{
		{name: "no flags", args: nil, want: false},
		{name: "single dash", args: []string{"-once"}, want: true},
		{name: "double dash", args: []string{"--once"}, want: true},
		{name: "explicit value", args: []string{"-once=true"}, want: true},
		{name: "explicit false", args: []string{"-once=false"}, want: false},
		{name: "unknown flag", args: []string{"-twice"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseFlags() = %v, want %v", got, tt.want)
			}
		})
	}
}
