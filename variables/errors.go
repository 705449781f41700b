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

import "github.com/pkg/errors"

var (
	// ErrNameNotFound - the table has no entry with the given name
	ErrNameNotFound = errors.New("name not found")
	// ErrWrongKind - the entry exists but holds a value of another kind
	ErrWrongKind = errors.New("wrong value kind")
)

// IsNameNotFound checks if err was caused by a missing table entry.
func IsNameNotFound(err error) bool {
	return errors.Cause(err) == ErrNameNotFound
}

// IsWrongKind checks if err was caused by a kind mismatch.
func IsWrongKind(err error) bool {
	return errors.Cause(err) == ErrWrongKind
}
