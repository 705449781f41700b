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
	"sync"
	"testing"

	"github.com/onsi/gomega"
)

func TestPrefix(t *testing.T) {
	g := gomega.NewWithT(t)

	prefix, err := Default().String("PREFIX")
	g.Expect(err).Should(gomega.BeNil())
	g.Expect(prefix).To(gomega.Equal("http://127.0.0.1:8080"))
	g.Expect(prefix).To(gomega.Equal("http://" + ODLSystemIP + ":" + Port))
	g.Expect(VTNCPrefix).To(gomega.Equal("http://" + VTNC + ":" + VTNCPort))
}

func TestDerivedValues(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"PREFIX", "http://127.0.0.1:8080"},
		{"VTNC_PREFIX", "http://127.0.0.1:8083"},
		{"CONTROLLER", "127.0.0.1"},
		{"KARAF_DETAILED_PROMPT", "@\x1b[0m\x1b[34mroot\x1b[0m>"},
		{"OPERATIONAL_TOPO_API", "/restconf/operational/network-topology:network-topology"},
		{"OPERATIONAL_NODES_NETVIRT", "/restconf/operational/network-topology:network-topology/topology/netvirt:1"},
		{"CONTROLLER_CONFIG_MOUNT", "/restconf/config/network-topology:network-topology/topology/topology-netconf/node/controller-config/yang-ext:mount"},
		{"CREATE_VLAN_TOPOLOGY_FILE_PATH", "MininetTopo/vlan_vtn_test.py"},
		{"CREATE_FULLYMESH_TOPOLOGY_FILE_PATH", "libraries/MininetTopo/create_fullymesh.py"},
		{"CREATE_PATHPOLICY_TOPOLOGY_FILE_PATH", "MininetTopo/topo-3sw-2host_multipath.py"},
		{"CONTROLLER_PROMPT", ">"},
		{"MININET_PROMPT", ">"},
		{"CONTROLLER_PASSWORD", ""},
		{"MININET_PASSWORD", ""},
	}
	table := NewTable()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			v, err := table.String(tt.name)
			g.Expect(err).Should(gomega.BeNil())
			g.Expect(v).To(gomega.Equal(tt.want))
		})
	}
}

func TestEndpoints(t *testing.T) {
	g := gomega.NewWithT(t)
	table := NewTable()

	for name, want := range map[string]string{
		"ODL_SYSTEM_IP":         "127.0.0.1",
		"PORT":                  "8080",
		"RESTPORT":              "8282",
		"RESTCONFPORT":          "8181",
		"KARAF_SHELL_PORT":      "8101",
		"ODL_NETCONF_PORT":      "2830",
		"ODL_BGP_PORT":          "1790",
		"BGP_TOOL_PORT":         "17900",
		"USER":                  "admin",
		"PWD":                   "admin",
		"KARAF_USER":            "karaf",
		"KARAF_PASSWORD":        "karaf",
		"PROMPT":                ">",
		"ODL_NETCONF_PROMPT":    "]]>]]>",
		"AUTH_TOKEN_API":        "/oauth2/token",
		"REVOKE_TOKEN_API":      "/oauth2/revoke",
		"GBP_REGEP_API":         "/restconf/operations/endpoint:register-endpoint",
		"GBP_TENANTS_API":       "/restconf/config/policy:tenants",
		"LFM_RPC_API":           "/restconf/operations/mappingservice",
		"CONFIG_NODES_API":      "/restconf/config/opendaylight-inventory:nodes",
		"OPERATIONAL_NODES_API": "/restconf/operational/opendaylight-inventory:nodes",
	} {
		v, err := table.String(name)
		g.Expect(err).Should(gomega.BeNil(), name)
		g.Expect(v).To(gomega.Equal(want), name)
	}

	timeout, err := table.Int("CONTROLLER_STOP_TIMEOUT")
	g.Expect(err).Should(gomega.BeNil())
	g.Expect(timeout).To(gomega.Equal(120))
	g.Expect(ControllerStopTimeoutDuration().Seconds()).To(gomega.Equal(120.0))

	for name, want := range map[string]int{"TOPO_TREE_LEVEL": 2, "TOPO_TREE_DEPTH": 3, "TOPO_TREE_FANOUT": 2} {
		v, err := table.Int(name)
		g.Expect(err).Should(gomega.BeNil())
		g.Expect(v).To(gomega.Equal(want), name)
	}
}

func TestHeaderPresets(t *testing.T) {
	tests := []struct {
		name string
		want Headers
	}{
		{"HEADERS", Headers{"Content-Type": "application/json"}},
		{"HEADERS_XML", Headers{"Content-Type": "application/xml"}},
		{"ACCEPT_XML", Headers{"Accept": "application/xml"}},
		{"ACCEPT_JSON", Headers{"Accept": "application/json"}},
		{"SEND_ACCEPT_XML_HEADERS", Headers{"Content-Type": "application/xml", "Accept": "application/xml"}},
		{"VTNC_HEADERS", Headers{"Content-Type": "application/json", "username": "admin", "password": "adminpass"}},
	}
	table := NewTable()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			h, err := table.Headers(tt.name)
			g.Expect(err).Should(gomega.BeNil())
			g.Expect(h).To(gomega.Equal(tt.want))
		})
	}
}

func TestHeadersHTTP(t *testing.T) {
	g := gomega.NewWithT(t)

	h := SendAcceptXMLHeaders().HTTPHeader()
	g.Expect(h.Get("Content-Type")).To(gomega.Equal("application/xml"))
	g.Expect(h.Get("Accept")).To(gomega.Equal("application/xml"))
	g.Expect(len(h)).To(gomega.Equal(2))

	h = VTNCHeaders().HTTPHeader()
	g.Expect(h).To(gomega.Equal(http.Header{
		"Content-Type": []string{"application/json"},
		"Username":     []string{"admin"},
		"Password":     []string{"adminpass"},
	}))
	g.Expect(h.Get("username")).To(gomega.Equal("admin"))
	g.Expect(VTNCHeaders()).To(gomega.HaveKey("username"))
	g.Expect(VTNCHeaders().Keys()).To(gomega.Equal([]string{"Content-Type", "password", "username"}))
}

func TestListsKeepOrder(t *testing.T) {
	g := gomega.NewWithT(t)
	table := NewTable()

	l, err := table.Strings("ODL_SYSTEM_IP_LIST")
	g.Expect(err).Should(gomega.BeNil())
	g.Expect(l).To(gomega.Equal([]string{"ODL_SYSTEM_1_IP", "ODL_SYSTEM_2_IP", "ODL_SYSTEM_3_IP"}))

	l, err = table.Strings("CONTROLLERS")
	g.Expect(err).Should(gomega.BeNil())
	g.Expect(l).To(gomega.Equal([]string{"CONTROLLER", "CONTROLLER1", "CONTROLLER2"}))

	l, err = table.Strings("AUTH")
	g.Expect(err).Should(gomega.BeNil())
	g.Expect(l).To(gomega.Equal([]string{"admin", "admin"}))
}

func TestNameNotFound(t *testing.T) {
	g := gomega.NewWithT(t)
	table := NewTable()

	_, err := table.Lookup("NO_SUCH_VARIABLE")
	g.Expect(err).ShouldNot(gomega.BeNil())
	g.Expect(IsNameNotFound(err)).To(gomega.BeTrue())
	g.Expect(err.Error()).To(gomega.ContainSubstring("NO_SUCH_VARIABLE"))
	g.Expect(table.Has("NO_SUCH_VARIABLE")).To(gomega.BeFalse())

	_, err = table.Resolve("CONTROLLERS")
	g.Expect(IsNameNotFound(err)).To(gomega.BeTrue())
	g.Expect(err.Error()).To(gomega.ContainSubstring("CONTROLLER1"))
}

func TestWrongKind(t *testing.T) {
	g := gomega.NewWithT(t)
	table := NewTable()

	_, err := table.Int("PORT")
	g.Expect(IsWrongKind(err)).To(gomega.BeTrue())
	_, err = table.Headers("AUTH")
	g.Expect(IsWrongKind(err)).To(gomega.BeTrue())
	_, err = table.String("ODL_CONTROLLER_SESSION")
	g.Expect(IsWrongKind(err)).To(gomega.BeTrue())

	v, err := table.Lookup("ODL_CONTROLLER_SESSION")
	g.Expect(err).Should(gomega.BeNil())
	g.Expect(v).To(gomega.BeNil())
}

func TestValuesAreCopies(t *testing.T) {
	g := gomega.NewWithT(t)
	table := NewTable()

	h, _ := table.Headers("HEADERS")
	h["Accept"] = "text/plain"
	l, _ := table.Strings("AUTH")
	l[0] = "root"

	h, _ = table.Headers("HEADERS")
	g.Expect(h).To(gomega.Equal(Headers{"Content-Type": "application/json"}))
	l, _ = table.Strings("AUTH")
	g.Expect(l).To(gomega.Equal([]string{"admin", "admin"}))

	for _, e := range table.Entries() {
		v, err := table.Lookup(e.Name)
		g.Expect(err).Should(gomega.BeNil())
		if e.Value == nil {
			g.Expect(v).To(gomega.BeNil(), e.Name)
			continue
		}
		g.Expect(v).To(gomega.Equal(e.Value), e.Name)
	}
}

func TestNamesUnique(t *testing.T) {
	g := gomega.NewWithT(t)
	table := NewTable()

	seen := map[string]bool{}
	for _, name := range table.Names() {
		g.Expect(seen[name]).To(gomega.BeFalse(), name)
		seen[name] = true
	}
	g.Expect(len(seen)).To(gomega.Equal(table.Len()))
	g.Expect(table.Names()[0]).To(gomega.Equal("ODL_SYSTEM_IP"))

	g.Expect(func() {
		table.add("PORT", "9090")
	}).To(gomega.Panic())
}

func TestDefaultConcurrentReaders(t *testing.T) {
	g := gomega.NewWithT(t)

	var wg sync.WaitGroup
	tables := make([]*Table, 8)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i] = Default()
			_, _ = tables[i].Lookup("PREFIX")
		}(i)
	}
	wg.Wait()
	for _, tbl := range tables {
		g.Expect(tbl).To(gomega.BeIdenticalTo(Default()))
	}
}
