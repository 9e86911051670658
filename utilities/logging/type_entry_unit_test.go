// Copyright 2025 Tanguy Berteau
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUnitEntryString(t *testing.T) {
	var tests = []struct {
		name         string
		entry        Entry
		wantSeverity string
	}{
		{
			name:         "defaultSeverityIsInfo",
			entry:        Entry{TaskName: "validateroles", Message: "done"},
			wantSeverity: "INFO",
		},
		{
			name:         "givenSeverityIsKept",
			entry:        Entry{TaskName: "remediate", Severity: "WARNING", Message: "skip"},
			wantSeverity: "WARNING",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			rendered := test.entry.String()
			var decoded map[string]interface{}
			if err := json.Unmarshal([]byte(rendered), &decoded); err != nil {
				t.Fatalf("Entry did not render to json: %s", rendered)
			}
			if decoded["severity"] != test.wantSeverity {
				t.Errorf("Severity want %s got %v", test.wantSeverity, decoded["severity"])
			}
			if !strings.Contains(rendered, test.entry.Message) {
				t.Errorf("Rendered entry should contains the message '%s' and is %s", test.entry.Message, rendered)
			}
		})
	}
}
