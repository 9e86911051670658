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
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
)

// MakeExclusionEntry builds a managed rules exclusion entry from its three string parts
// The match variable and the operator are checked against the values the API accepts
func MakeExclusionEntry(matchVariable string, selectorMatchOperator string, selector string) (entry armnetwork.OwaspCrsExclusionEntry, err error) {
	var matchVariableValue armnetwork.OwaspCrsExclusionEntryMatchVariable
	for _, possibleValue := range armnetwork.PossibleOwaspCrsExclusionEntryMatchVariableValues() {
		if string(possibleValue) == matchVariable {
			matchVariableValue = possibleValue
			break
		}
	}
	if matchVariableValue == "" {
		return entry, fmt.Errorf("waf unknown exclusion match variable '%s', accepted values %v",
			matchVariable, armnetwork.PossibleOwaspCrsExclusionEntryMatchVariableValues())
	}

	var operatorValue armnetwork.OwaspCrsExclusionEntrySelectorMatchOperator
	for _, possibleValue := range armnetwork.PossibleOwaspCrsExclusionEntrySelectorMatchOperatorValues() {
		if string(possibleValue) == selectorMatchOperator {
			operatorValue = possibleValue
			break
		}
	}
	if operatorValue == "" {
		return entry, fmt.Errorf("waf unknown exclusion selector match operator '%s', accepted values %v",
			selectorMatchOperator, armnetwork.PossibleOwaspCrsExclusionEntrySelectorMatchOperatorValues())
	}

	if selector == "" {
		return entry, fmt.Errorf("waf empty exclusion selector")
	}

	entry.MatchVariable = to.Ptr(matchVariableValue)
	entry.SelectorMatchOperator = to.Ptr(operatorValue)
	entry.Selector = to.Ptr(selector)
	return entry, nil
}
