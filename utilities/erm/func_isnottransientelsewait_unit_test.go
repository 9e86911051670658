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

package erm

import (
	"fmt"
	"testing"
)

func TestUnitIsNotTransientElseWait(t *testing.T) {
	var tests = []struct {
		name               string
		errorMessage       string
		wantIsNotTransient bool
	}{
		{"serverError", "GET https://management.azure.com/subscriptions RESPONSE 500: internal server error", false},
		{"serviceUnavailable", "RESPONSE 503: service unavailable", false},
		{"throttled", "RESPONSE 429: too many requests", false},
		{"notFound", "RESPONSE 404: role assignment not found", true},
		{"forbidden", "RESPONSE 403: caller does not have permission", true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			got := IsNotTransientElseWait(fmt.Errorf(test.errorMessage), 0)
			if test.wantIsNotTransient != got {
				t.Errorf("Error '%s' want %v got %v", test.errorMessage, test.wantIsNotTransient, got)
			}
		})
	}
}
