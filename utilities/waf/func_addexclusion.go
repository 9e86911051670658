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

// AddExclusion appends the entry to the exclusion list unless an equal entry is already there
// changed reports whether the returned list differs from the given one
func AddExclusion(exclusions []*armnetwork.OwaspCrsExclusionEntry, entry armnetwork.OwaspCrsExclusionEntry) (updatedExclusions []*armnetwork.OwaspCrsExclusionEntry, changed bool) {
	for _, existingEntry := range exclusions {
		if sameExclusionEntry(existingEntry, &entry) {
			return exclusions, false
		}
	}
	return append(exclusions, &entry), true
}
