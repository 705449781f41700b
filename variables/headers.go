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

import (
	"net/http"
	"sort"
)

// Headers - fixed set of HTTP header values keyed by header name
type Headers map[string]string

// Clone returns a copy that can be modified without touching the preset.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	rv := make(Headers, len(h))
	for k, v := range h {
		rv[k] = v
	}
	return rv
}

// HTTPHeader converts headers to net/http form, ready to be set on a request.
// Header names are canonicalized, e.g. "username" becomes "Username".
func (h Headers) HTTPHeader() http.Header {
	rv := http.Header{}
	for k, v := range h {
		rv.Set(k, v)
	}
	return rv
}

// Keys returns header names sorted.
func (h Headers) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

const (
	contentType     = "Content-Type"
	accept          = "Accept"
	applicationJSON = "application/json"
	applicationXML  = "application/xml"
)

// JSONHeaders - JSON content type
func JSONHeaders() Headers {
	return Headers{contentType: applicationJSON}
}

// XMLHeaders - XML content type
func XMLHeaders() Headers {
	return Headers{contentType: applicationXML}
}

// AcceptXML - accept XML
func AcceptXML() Headers {
	return Headers{accept: applicationXML}
}

// AcceptJSON - accept JSON
func AcceptJSON() Headers {
	return Headers{accept: applicationJSON}
}

// SendAcceptXMLHeaders - send and accept XML
func SendAcceptXMLHeaders() Headers {
	return Headers{contentType: applicationXML, accept: applicationXML}
}
