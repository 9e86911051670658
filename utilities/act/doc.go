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

// Package act validates role action patterns against the catalog of registered provider operations
//
// An action pattern is one of:
//   - an exact operation id, like Microsoft.Compute/virtualMachines/read
//   - a pattern ending in /* matching any operation with one more path segment after the prefix
//   - a pattern ending in a bare * matching any operation starting with the prefix, no separator required
//
// Matching is case sensitive, the catalog is read only, validation is pure: no io, no hidden state
package act
