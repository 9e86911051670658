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

package waf

import (
	"testing"
)

func TestUnitMakeExclusionEntry(t *testing.T) {
	var tests = []struct {
		name                  string
		matchVariable         string
		selectorMatchOperator string
		selector              string
		wantError             bool
	}{
		{
			name:                  "validEntry",
			matchVariable:         "RequestCookieNames",
			selectorMatchOperator: "Equals",
			selector:              "session-token",
			wantError:             false,
		},
		{
			name:                  "validStartsWith",
			matchVariable:         "RequestHeaderNames",
			selectorMatchOperator: "StartsWith",
			selector:              "x-internal-",
			wantError:             false,
		},
		{
			name:                  "unknownMatchVariable",
			matchVariable:         "RequestCookies",
			selectorMatchOperator: "Equals",
			selector:              "session-token",
			wantError:             true,
		},
		{
			name:                  "unknownOperator",
			matchVariable:         "RequestCookieNames",
			selectorMatchOperator: "Like",
			selector:              "session-token",
			wantError:             true,
		},
		{
			name:                  "emptySelector",
			matchVariable:         "RequestCookieNames",
			selectorMatchOperator: "Equals",
			selector:              "",
			wantError:             true,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			entry, err := MakeExclusionEntry(test.matchVariable, test.selectorMatchOperator, test.selector)
			if test.wantError {
				if err == nil {
					t.Errorf("Should return an error and does not")
				}
				return
			}
			if err != nil {
				t.Fatalf("Should not return an error and got %v", err)
			}
			if string(*entry.MatchVariable) != test.matchVariable {
				t.Errorf("Match variable want %s got %s", test.matchVariable, *entry.MatchVariable)
			}
			if string(*entry.SelectorMatchOperator) != test.selectorMatchOperator {
				t.Errorf("Selector match operator want %s got %s", test.selectorMatchOperator, *entry.SelectorMatchOperator)
			}
			if *entry.Selector != test.selector {
				t.Errorf("Selector want %s got %s", test.selector, *entry.Selector)
			}
		})
	}
}
