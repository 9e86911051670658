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

// MakeOperationCatalog builds an operation catalog from a list of operation ids
// Duplicates and empty strings are discarded, first occurrence order is kept
func MakeOperationCatalog(operationIDs []string) OperationCatalog {
	catalog := OperationCatalog{
		members: make(map[string]struct{}, len(operationIDs)),
	}
	for _, operationID := range operationIDs {
		if operationID == "" {
			continue
		}
		if _, found := catalog.members[operationID]; found {
			continue
		}
		catalog.members[operationID] = struct{}{}
		catalog.ordered = append(catalog.ordered, operationID)
	}
	return catalog
}
