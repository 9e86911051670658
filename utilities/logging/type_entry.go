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

package logging

import (
	"encoding/json"
	"log"
	"time"
)

// Entry defines a structured log entry
type Entry struct {
	TaskName       string    `json:"task_name"`
	Environment    string    `json:"environment"`
	Severity       string    `json:"severity,omitempty"`
	Message        string    `json:"message"`
	Description    string    `json:"description,omitempty"`
	Now            time.Time `json:"now,omitempty"`
	InitID         string    `json:"init_id,omitempty"`
	SubscriptionID string    `json:"subscription_id,omitempty"`
	LatencySeconds float64   `json:"latency_seconds,omitempty"`
}

// String renders an entry structure to the JSON format
func (e Entry) String() string {
	if e.Severity == "" {
		e.Severity = "INFO"
	}
	out, err := json.Marshal(e)
	if err != nil {
		log.Printf("json.Marshal: %v", err)
	}
	return string(out)
}
