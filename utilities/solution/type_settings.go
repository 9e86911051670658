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

// Settings settings common to all tasks, one value per environment where a map is used
type Settings struct {
	Hosting struct {
		TenantID        string            `yaml:"tenantID,omitempty"`
		TenantIDs       map[string]string `yaml:"tenantIDs"`
		SubscriptionID  string            `yaml:"subscriptionID,omitempty"`
		SubscriptionIDs map[string]string `yaml:"subscriptionIDs"`
	}
	Reporting struct {
		FolderPath string `yaml:"folderPath" valid:"isNotZeroValue"`
		Format     string `yaml:"format" valid:"isReportFormat"`
	}
	Remediation struct {
		// existing non compliant resources only, or re evaluate compliance first
		ResourceDiscoveryMode string `yaml:"resourceDiscoveryMode"`
	}
	RetryTimeOutSeconds int64 `yaml:"retryTimeOutSeconds" valid:"isNotZeroValue"`
}
