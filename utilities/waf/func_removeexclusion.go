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
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
)

// RemoveExclusion removes every entry equal to the given one from the exclusion list
// Removing an entry that is not in the list is a no-op
// changed reports whether the returned list differs from the given one
func RemoveExclusion(exclusions []*armnetwork.OwaspCrsExclusionEntry, entry armnetwork.OwaspCrsExclusionEntry) (updatedExclusions []*armnetwork.OwaspCrsExclusionEntry, changed bool) {
	updatedExclusions = make([]*armnetwork.OwaspCrsExclusionEntry, 0, len(exclusions))
	for _, existingEntry := range exclusions {
		if sameExclusionEntry(existingEntry, &entry) {
			changed = true
			continue
		}
		updatedExclusions = append(updatedExclusions, existingEntry)
	}
	if !changed {
		return exclusions, false
	}
	return updatedExclusions, true
}

func sameExclusionEntry(a *armnetwork.OwaspCrsExclusionEntry, b *armnetwork.OwaspCrsExclusionEntry) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.MatchVariable == nil || b.MatchVariable == nil {
		if a.MatchVariable != nil || b.MatchVariable != nil {
			return false
		}
	} else if *a.MatchVariable != *b.MatchVariable {
		return false
	}
	if a.SelectorMatchOperator == nil || b.SelectorMatchOperator == nil {
		if a.SelectorMatchOperator != nil || b.SelectorMatchOperator != nil {
			return false
		}
	} else if *a.SelectorMatchOperator != *b.SelectorMatchOperator {
		return false
	}
	if a.Selector == nil || b.Selector == nil {
		return a.Selector == nil && b.Selector == nil
	}
	return *a.Selector == *b.Selector
}
