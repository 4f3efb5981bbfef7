package hid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leongb88/scrcpy/hid"
)

func TestShortItemEncoding(t *testing.T) {
	type testCase struct {
		name     string
		report   hid.Report
		expected []byte
	}

	cases := []testCase{
		{
			name:     "usage page",
			report:   hid.Report{Items: []hid.Item{hid.UsagePage{Page: hid.UsagePageGenericDesktop}}},
			expected: []byte{0x05, 0x01},
		},
		{
			name:     "zero value still carries one data byte",
			report:   hid.Report{Items: []hid.Item{hid.LogicalMinimum{Min: 0}}},
			expected: []byte{0x15, 0x00},
		},
		{
			name:     "two byte value",
			report:   hid.Report{Items: []hid.Item{hid.LogicalMaximum{Max: 0x0100}}},
			expected: []byte{0x26, 0x00, 0x01},
		},
		{
			name:     "report count above 255",
			report:   hid.Report{Items: []hid.Item{hid.ReportCount{Count: 256}}},
			expected: []byte{0x96, 0x00, 0x01},
		},
		{
			name: "collection emits end collection",
			report: hid.Report{Items: []hid.Item{
				hid.Collection{
					Kind: hid.CollectionApplication,
					Items: []hid.Item{
						hid.Input{Flags: hid.MainConst},
					},
				},
			}},
			expected: []byte{0xA1, 0x01, 0x81, 0x01, 0xC0},
		},
		{
			name: "input flags",
			report: hid.Report{Items: []hid.Item{
				hid.Input{Flags: hid.MainData | hid.MainVar | hid.MainAbs},
			}},
			expected: []byte{0x81, 0x02},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.report.Bytes())
		})
	}
}
