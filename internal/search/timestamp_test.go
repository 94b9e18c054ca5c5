package search

import (
	"testing"
	"time"
)

func TestExtractTimestamp(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string // RFC3339Nano, "" for nil
	}{
		{
			name: "rfc3339 with nanoseconds",
			line: `2025-12-08T08:23:35.438311029Z 2025/12/08 08:23:35 [ERROR] error syncing, requeuing`,
			want: "2025-12-08T08:23:35.438311029Z",
		},
		{
			name: "rfc3339 without fraction",
			line: `time="2025-12-30T21:45:58Z" level=info msg="state: {installed:false firstHost:true}"`,
			want: "2025-12-30T21:45:58Z",
		},
		{
			name: "rfc3339 mid-line",
			line: `Dec 30 21:51:44.485722 isim-dev rancher-system-agent[33266]: time="2025-12-30T21:51:44Z" level=info msg="[Applyinator] Extracting image"`,
			want: "2025-12-30T21:51:44Z",
		},
		{
			name: "zoneless with milliseconds assumed UTC",
			line: `2025-12-30 21:58:14.266 [INFO][52211] cni-plugin/dataplane_linux.go 508: Disabling IPv4 forwarding`,
			want: "2025-12-30T21:58:14.266Z",
		},
		{
			name: "rfc3339 wins over zoneless",
			line: `2025-12-30T21:58:14.266Z then 2025-12-30 21:50:00.000 later`,
			want: "2025-12-30T21:58:14.266Z",
		},
		{
			name: "no timestamp",
			line: `I1230 21:58:14.297331 52196 event.go:377] type: 'Normal'`,
			want: "",
		},
		{
			name: "pattern match but invalid date",
			line: `2025-13-45T25:61:61Z bogus emitter`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTimestamp(tt.line)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("extractTimestamp(%q) = %v, want nil", tt.line, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("extractTimestamp(%q) = nil, want %s", tt.line, tt.want)
			}
			want, err := time.Parse(time.RFC3339Nano, tt.want)
			if err != nil {
				t.Fatalf("bad want value: %v", err)
			}
			if !got.Equal(want) {
				t.Errorf("extractTimestamp(%q) = %v, want %v", tt.line, got, want)
			}
			if got.Location() != time.UTC {
				t.Errorf("timestamp location = %v, want UTC", got.Location())
			}
		})
	}
}
