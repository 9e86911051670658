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

package act

import (
	"strings"
	"testing"
)

func TestUnitIsValidAction(t *testing.T) {
	catalog := MakeOperationCatalog([]string{
		"Microsoft.Compute/virtualMachines/read",
		"Microsoft.Compute/virtualMachines/write",
		"Microsoft.Compute/disks/read",
		"Microsoft.Storage/storageAccounts/listKeys/action",
		"Foobar/read",
		"Foo/bar/read",
	})
	var tests = []struct {
		name    string
		pattern string
		want    bool
	}{
		{"exactMatch", "Microsoft.Compute/virtualMachines/read", true},
		{"exactMatchIsCaseSensitive", "microsoft.compute/virtualMachines/read", false},
		{"slashStarMatchesDeeperSegment", "Microsoft.Compute/*", true},
		{"slashStarMatchesOneProvider", "Microsoft.Compute/virtualMachines/*", true},
		{"slashStarNoSuchProvider", "Microsoft.Network/*", false},
		{"slashStarNeedsSeparatorAfterPrefix", "Foo/*", true},
		{"slashStarDoesNotMatchBarePrefix", "Foob/*", false},
		{"bareStarNoSeparatorRequired", "Foo*", true},
		{"bareStarMatchesFoobar", "Foob*", true},
		{"bareStarNoSuchPrefix", "Bar*", false},
		{"starAloneMatchesEverything", "*", true},
		{"unregisteredOperation", "Microsoft.Compute/virtualMachines/delete", false},
		{"notAPattern", "Microsoft.Compute", false},
	}

	for _, test := range tests {
		test := test // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := IsValidAction(test.pattern, catalog)
			if err != nil {
				t.Fatalf("Did not expect an error and got %s", err.Error())
			}
			if test.want != got {
				t.Errorf("Pattern '%s' want %v got %v", test.pattern, test.want, got)
			}
			// pure function, same inputs same verdict
			gotAgain, err := IsValidAction(test.pattern, catalog)
			if err != nil {
				t.Fatalf("Did not expect an error and got %s", err.Error())
			}
			if got != gotAgain {
				t.Errorf("Pattern '%s' first call got %v second call got %v", test.pattern, got, gotAgain)
			}
		})
	}
}

// The separator free bare star match is intentional: 'Foo*' matches 'Foobar/read' even
// though the wildcard is not on a segment boundary. Kept as the source behavior
func TestUnitIsValidActionBareStarLooseness(t *testing.T) {
	catalog := MakeOperationCatalog([]string{"Foobar/read"})
	got, err := IsValidAction("Foo*", catalog)
	if err != nil {
		t.Fatalf("Did not expect an error and got %s", err.Error())
	}
	if !got {
		t.Errorf("Pattern 'Foo*' against {'Foobar/read'} want true got false")
	}
	got, err = IsValidAction("Foo/*", catalog)
	if err != nil {
		t.Fatalf("Did not expect an error and got %s", err.Error())
	}
	if got {
		t.Errorf("Pattern 'Foo/*' against {'Foobar/read'} want false got true")
	}
}

func TestUnitIsValidActionExactMatchReflexivity(t *testing.T) {
	catalog := MakeOperationCatalog([]string{
		"Microsoft.Authorization/roleDefinitions/read",
		"Microsoft.Authorization/roleDefinitions/write",
		"Microsoft.Resources/subscriptions/read",
	})
	for _, operationID := range catalog.OperationIDs() {
		got, err := IsValidAction(operationID, catalog)
		if err != nil {
			t.Fatalf("Did not expect an error and got %s", err.Error())
		}
		if !got {
			t.Errorf("Catalog member '%s' want true got false", operationID)
		}
	}
}

func TestUnitIsValidActionEmptyCatalog(t *testing.T) {
	catalog := MakeOperationCatalog([]string{})
	for _, pattern := range []string{"Microsoft.Compute/virtualMachines/read", "Microsoft.Compute/*", "Foo*", "*"} {
		got, err := IsValidAction(pattern, catalog)
		if err != nil {
			t.Fatalf("Did not expect an error and got %s", err.Error())
		}
		if got {
			t.Errorf("Pattern '%s' against an empty catalog want false got true", pattern)
		}
	}
}

func TestUnitIsValidActionInvalidArguments(t *testing.T) {
	var tests = []struct {
		name         string
		pattern      string
		catalog      OperationCatalog
		wantErrorMsg string
	}{
		{"emptyPattern", "", MakeOperationCatalog([]string{"Foo/read"}), "empty action pattern"},
		{"catalogNotBuilt", "Foo/read", OperationCatalog{}, "catalog has not been built"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := IsValidAction(test.pattern, test.catalog)
			if err == nil {
				t.Fatalf("Expect this error did not get it %s", test.wantErrorMsg)
			}
			if !strings.Contains(err.Error(), test.wantErrorMsg) {
				t.Errorf("Error message should contains '%s' and is", test.wantErrorMsg)
				t.Log(string('\n') + err.Error())
			}
		})
	}
}
