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

// Package export - writes the variables table as a Robot Framework variable file
package export

import (
	"io"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	yamlv2 "gopkg.in/yaml.v2"

	"github.com/networkservicemesh/csit/variables"
)

// Format - output format
type Format string

const (
	// YAML - Robot Framework YAML variable file
	YAML Format = "yaml"
	// JSON - same variables as JSON. Keys are sorted, declaration order is not kept.
	JSON Format = "json"
)

// ErrUnknownFormat - format is neither yaml nor json
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat returns the format named by s, case insensitive. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "format %q", s)
}

// Marshal renders the table. YAML keeps declaration order, JSON keys come out sorted.
func Marshal(t *variables.Table, f Format) ([]byte, error) {
	doc, err := yamlv2.Marshal(toMapSlice(t))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal variables")
	}
	switch f {
	case YAML:
		return doc, nil
	case JSON:
		out, err := yaml.YAMLToJSON(doc)
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert variables to json")
		}
		return out, nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "format %q", f)
}

// Write renders the table to w.
func Write(w io.Writer, t *variables.Table, f Format) error {
	out, err := Marshal(t, f)
	if err != nil {
		return err
	}
	if _, err = w.Write(out); err != nil {
		return errors.Wrap(err, "failed to write variables")
	}
	logrus.Debugf("Written %d variables as %s", t.Len(), f)
	return nil
}

func toMapSlice(t *variables.Table) yamlv2.MapSlice {
	rv := make(yamlv2.MapSlice, 0, t.Len())
	for _, e := range t.Entries() {
		rv = append(rv, yamlv2.MapItem{Key: e.Name, Value: toYAMLValue(e.Value)})
	}
	return rv
}

func toYAMLValue(v interface{}) interface{} {
	h, ok := v.(variables.Headers)
	if !ok {
		return v
	}
	rv := make(yamlv2.MapSlice, 0, len(h))
	for _, k := range h.Keys() {
		rv = append(rv, yamlv2.MapItem{Key: k, Value: h[k]})
	}
	return rv
}
