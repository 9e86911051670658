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
Package main AGT Azure Governance Toolbox

## What

A set of administrative governance tasks against Azure management APIs, run one at a time from a single cli:

1. Validate custom role definitions: every action pattern in Actions, NotActions, DataActions, NotDataActions is checked against the catalog of registered provider operations
2. Report policy compliance per subscription, to the console and to CSV
3. Trigger remediation tasks for non compliant policy assignments
4. Remove the role assignments of one principal across all enabled subscriptions
5. Edit the managed rules exclusion list of a Web Application Firewall policy

## Why

- Governance findings only deliver value when someone acts on them: reports, clean ups and remediations should be one command away
- Custom roles referencing operations that no longer exist are silent permission bugs: validate them against the live operation catalog

## How

- Sequential api calls, no daemon, no persisted state: each task loads what it needs once, runs to completion, and exits
- One task per package under services, shared building blocks under utilities
*/
package main
