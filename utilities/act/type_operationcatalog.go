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

// OperationCatalog the set of currently registered provider operation ids
// Built once per run, read only afterwards. The zero value is not usable, use MakeOperationCatalog
type OperationCatalog struct {
	members map[string]struct{}
	ordered []string
}

// Size returns the number of operation ids in the catalog
func (catalog OperationCatalog) Size() int {
	return len(catalog.ordered)
}

// Contains reports whether an operation id is in the catalog, exact case sensitive match
func (catalog OperationCatalog) Contains(operationID string) bool {
	_, found := catalog.members[operationID]
	return found
}

// OperationIDs returns the catalog content in insertion order
func (catalog OperationCatalog) OperationIDs() []string {
	operationIDs := make([]string, len(catalog.ordered))
	copy(operationIDs, catalog.ordered)
	return operationIDs
}
