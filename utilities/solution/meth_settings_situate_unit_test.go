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

package solution

import (
	"testing"

	"github.com/TanguyBerteau/agt/utilities/ffo"
)

func TestUnitSettingsSituate(t *testing.T) {
	var testCases = []struct {
		name               string
		environmentName    string
		wantTenantID       string
		wantSubscriptionID string
	}{
		{
			name:               "dev",
			environmentName:    "dev",
			wantTenantID:       "11111111-1111-1111-1111-111111111111",
			wantSubscriptionID: "aaaaaaaa-0000-0000-0000-000000000001",
		},
		{
			name:               "prd",
			environmentName:    "prd",
			wantTenantID:       "22222222-2222-2222-2222-222222222222",
			wantSubscriptionID: "aaaaaaaa-0000-0000-0000-000000000002",
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var settings Settings
			err := ffo.ReadUnmarshalYAML("testdata/solution.yaml", &settings)
			if err != nil {
				t.Fatal(err)
			}
			settings.Situate(tc.environmentName)
			if settings.Hosting.TenantID != tc.wantTenantID {
				t.Errorf("TenantID want %s got %s", tc.wantTenantID, settings.Hosting.TenantID)
			}
			if settings.Hosting.SubscriptionID != tc.wantSubscriptionID {
				t.Errorf("SubscriptionID want %s got %s", tc.wantSubscriptionID, settings.Hosting.SubscriptionID)
			}
		})
	}
}
