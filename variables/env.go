// Copyright (c) 2020 Cisco and/or its affiliates.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package variables

//EnvVar - name of an environment variable that holds a system address
type EnvVar string

//Name returns env variable name
func (v EnvVar) Name() string {
	return string(v)
}

func (v EnvVar) String() string {
	return v.Name()
}

// EnvVarNames converts a list of env variables to their names.
func EnvVarNames(vars []EnvVar) []string {
	rv := make([]string, 0, len(vars))
	for _, v := range vars {
		rv = append(rv, v.Name())
	}
	return rv
}
