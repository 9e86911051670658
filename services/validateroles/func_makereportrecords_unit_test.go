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

package validateroles

import (
	"testing"

	"github.com/TanguyBerteau/agt/utilities/act"
)

func TestUnitMakeReportRecords(t *testing.T) {
	validations := []roleValidation{
		{
			roleName: "vm operator",
			facets: []facetValidation{
				{
					facet: "Actions",
					result: act.ValidationResult{
						ValidPatterns:   []string{"Microsoft.Compute/virtualMachines/read"},
						InvalidPatterns: []string{"Microsoft.Compute/virtualMachines/reboot/action"},
					},
				},
				{
					facet:  "NotActions",
					result: act.ValidationResult{},
				},
			},
		},
	}

	records := makeReportRecords(validations)

	if len(records) != 3 {
		t.Fatalf("Records count want 3 got %d", len(records))
	}
	wantHeader := []string{"roleName", "facet", "actionPattern", "isValid"}
	for i, column := range wantHeader {
		if records[0][i] != column {
			t.Errorf("Header column %d want %s got %s", i, column, records[0][i])
		}
	}
	if records[1][3] != "true" {
		t.Errorf("First data row verdict want true got %s", records[1][3])
	}
	if records[2][2] != "Microsoft.Compute/virtualMachines/reboot/action" || records[2][3] != "false" {
		t.Errorf("Second data row want the invalid pattern with verdict false got %v", records[2])
	}
}
