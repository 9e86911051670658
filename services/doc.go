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

/*
Package services structure

All governance task packages share a consistent structure

## Two functions and one type

### `Global` type

- A `struct` carrying the API clients and the situated settings a task needs, built once per run

### `Initialize` function

- Goal
  - Build the API clients and situate the task on its target scope
- Implementation
  - Is executed once per run, before the task function
  - Logs a CRITICAL entry and returns the error when a client cannot be built

### The task function

- Named after the package, e.g. `ValidateRoles` in package validateroles
- Goal
  - Perform the governance task end to end and return
- Implementation
  - Uses the clients and settings carried by the `Global` variable
  - A broken item is reported as a WARNING and skipped, the run keeps going
  - Tasks that change resources ask for confirmation first, unless auto approval was requested
  - Ends with a NOTICE finish entry carrying counts and latency

*/
package services
