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
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Entry - single named value of the table
type Entry struct {
	Name  string
	Value interface{}
}

// Table - read-only mapping of variable names to values.
// It is built once and is safe for concurrent readers.
type Table struct {
	entries []Entry
	index   map[string]int
}

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// Default returns the process wide table, building it on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable()
	})
	return defaultTable
}

// NewTable evaluates every declaration in order and returns the resulting table.
// It panics if a name is declared twice.
func NewTable() *Table {
	t := &Table{
		index: map[string]int{},
	}

	t.add("ODL_SYSTEM_IP", ODLSystemIP)
	t.add("CONTROLLER", Controller)
	t.add("PORT", Port)
	t.add("RESTPORT", RestPort)
	t.add("RESTCONFPORT", RestconfPort)
	t.add("PREFIX", Prefix)
	t.add("PROMPT", Prompt)
	t.add("CONTAINER", Container)
	t.add("USER", User)
	t.add("PWD", Pwd)
	t.add("PASSWORD", Password)
	t.add("AUTH", Auth().Pair())
	t.add("SCOPE", Scope)
	t.add("HEADERS", JSONHeaders())
	t.add("HEADERS_XML", XMLHeaders())
	t.add("ACCEPT_XML", AcceptXML())
	t.add("ACCEPT_JSON", AcceptJSON())
	// filled by suites at runtime
	t.add("ODL_CONTROLLER_SESSION", nil)
	t.add("TOPO_TREE_LEVEL", TopoTreeLevel)
	t.add("TOPO_TREE_DEPTH", TopoTreeDepth)
	t.add("TOPO_TREE_FANOUT", TopoTreeFanout)
	t.add("ODL_SYSTEM_IP_LIST", EnvVarNames(ODLSystemIPList()))
	t.add("CONTROLLERS", Controllers())
	t.add("ODL_SYSTEM_PASSWORD", ODLSystemPassword)
	t.add("CONTROLLER_PASSWORD", ControllerPassword)
	t.add("TOOLS_SYSTEM_PASSWORD", ToolsSystemPassword)
	t.add("MININET_PASSWORD", MininetPassword)
	t.add("KEYFILE_PASS", KeyfilePass)
	t.add("SSH_KEY", SSHKey)
	t.add("CONTROLLER_STOP_TIMEOUT", ControllerStopTimeout)
	t.add("TOPOLOGY_URL", TopologyURL)
	t.add("SEND_ACCEPT_XML_HEADERS", SendAcceptXMLHeaders())

	t.add("KARAF_SHELL_PORT", KarafShellPort)
	t.add("ESCAPE_CHARACTER", EscapeCharacter)
	t.add("KARAF_DETAILED_PROMPT", KarafDetailedPrompt)
	t.add("KARAF_PROMPT", KarafPrompt)
	t.add("KARAF_USER", KarafUser)
	t.add("KARAF_PASSWORD", KarafPassword)

	t.add("ODL_BGP_PORT", ODLBGPPort)
	t.add("BGP_TOOL_PORT", BGPToolPort)

	t.add("DEFAULT_LINUX_PROMPT", DefaultLinuxPrompt)
	t.add("ODL_SYSTEM_PROMPT", ODLSystemPrompt)
	t.add("CONTROLLER_PROMPT", ControllerPrompt)
	t.add("TOOLS_SYSTEM_PROMPT", ToolsSystemPrompt)
	t.add("MININET_PROMPT", MininetPrompt)

	t.add("ODL_NETCONF_PORT", ODLNetconfPort)
	t.add("ODL_NETCONF_USER", ODLNetconfUser)
	t.add("ODL_NETCONF_PASSWORD", ODLNetconfPassword)
	t.add("ODL_NETCONF_PROMPT", ODLNetconfPrompt)
	t.add("ODL_NETCONF_NAMESPACE", ODLNetconfNamespace)

	t.add("VTNC", VTNC)
	t.add("VTNCPORT", VTNCPort)
	t.add("VTNC_PREFIX", VTNCPrefix)
	t.add("VTNC_HEADERS", VTNCHeaders())
	t.add("VTNWEBAPI", VTNWebAPI)
	t.add("CTRLS_CREATE", CtrlsCreate)
	t.add("CTRLS", Ctrls)
	t.add("SW", SW)
	t.add("VTNS_CREATE", VTNsCreate)
	t.add("VTNS", VTNs)
	t.add("VBRS_CREATE", VBRsCreate)
	t.add("VBRS", VBRs)
	t.add("VBRIFS_CREATE", VBRIfsCreate)
	t.add("VBRIFS", VBRIfs)
	t.add("PORTMAP_CREATE", PortmapCreate)
	t.add("VLANMAP_CREATE", VlanmapCreate)
	t.add("PORTS", Ports)
	t.add("FLOWLISTS_CREATE", FlowlistsCreate)
	t.add("FLOWLISTENTRIES_CREATE", FlowlistEntriesCreate)
	t.add("FLOWLISTS", Flowlists)
	t.add("FLOWFILTERS_CREATE", FlowfiltersCreate)
	t.add("FLOWFILTERENTRIES_CREATE", FlowfilterEntriesCreate)
	t.add("FLOWFILTERS", Flowfilters)
	t.add("FLOWFILTERS_UPDATE", FlowfiltersUpdate)

	t.add("CONFIG_NODES_API", ConfigNodesAPI)
	t.add("OPERATIONAL_NODES_API", OperationalNodesAPI)
	t.add("OPERATIONAL_NODES_NETVIRT", OperationalNodesNetvirt)
	t.add("OPERATIONAL_TOPO_API", OperationalTopoAPI)
	t.add("CONFIG_TOPO_API", ConfigTopoAPI)
	t.add("CONTROLLER_CONFIG_MOUNT", ControllerConfigMount)
	t.add("CONFIG_API", ConfigAPI)
	t.add("OPERATIONAL_API", OperationalAPI)
	t.add("MODULES_API", ModulesAPI)

	t.add("AUTH_TOKEN_API", AuthTokenAPI)
	t.add("REVOKE_TOKEN_API", RevokeTokenAPI)

	t.add("BASE_MAC_1", BaseMAC1)
	t.add("BASE_IP_1", BaseIP1)

	t.add("CREATE_VLAN_TOPOLOGY_FILE", CreateVlanTopologyFile)
	t.add("CREATE_VLAN_TOPOLOGY_FILE_PATH", CreateVlanTopologyFilePath)
	t.add("CREATE_FULLYMESH_TOPOLOGY_FILE", CreateFullymeshTopologyFile)
	t.add("CREATE_FULLYMESH_TOPOLOGY_FILE_PATH", CreateFullymeshTopologyFilePath)
	t.add("CREATE_PATHPOLICY_TOPOLOGY_FILE", CreatePathpolicyTopologyFile)
	t.add("CREATE_PATHPOLICY_TOPOLOGY_FILE_PATH", CreatePathpolicyTopologyFilePath)

	t.add("GBP_REGEP_API", GBPRegEPAPI)
	t.add("GBP_UNREGEP_API", GBPUnregEPAPI)
	t.add("GBP_TENANTS_API", GBPTenantsAPI)
	t.add("GBP_TUNNELS_API", GBPTunnelsAPI)

	t.add("LFM_RPC_API", LFMRPCAPI)
	t.add("LFM_RPC_API_LI", LFMRPCAPILI)
	t.add("LFM_SB_RPC_API", LFMSBRPCAPI)

	logrus.Debugf("Variables table built, %d entries", len(t.entries))
	return t
}

func (t *Table) add(name string, value interface{}) {
	if _, ok := t.index[name]; ok {
		panic(fmt.Sprintf("variable %s declared twice", name))
	}
	t.index[name] = len(t.entries)
	t.entries = append(t.entries, Entry{Name: name, Value: value})
}

// Len returns number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Has checks if name is declared.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Names returns declared names in declaration order.
func (t *Table) Names() []string {
	rv := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		rv = append(rv, e.Name)
	}
	return rv
}

// Entries returns copies of all entries in declaration order.
func (t *Table) Entries() []Entry {
	rv := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		rv = append(rv, Entry{Name: e.Name, Value: copyValue(e.Value)})
	}
	return rv
}

// Lookup returns a copy of the value declared under name.
func (t *Table) Lookup(name string) (interface{}, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, errors.Wrapf(ErrNameNotFound, "variable %s", name)
	}
	return copyValue(t.entries[i].Value), nil
}

// String returns a string valued entry.
func (t *Table) String(name string) (string, error) {
	v, err := t.Lookup(name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", wrongKind(name, "string", v)
	}
	return s, nil
}

// Int returns an integer valued entry.
func (t *Table) Int(name string) (int, error) {
	v, err := t.Lookup(name)
	if err != nil {
		return 0, err
	}
	i, ok := v.(int)
	if !ok {
		return 0, wrongKind(name, "int", v)
	}
	return i, nil
}

// Strings returns a list valued entry.
func (t *Table) Strings(name string) ([]string, error) {
	v, err := t.Lookup(name)
	if err != nil {
		return nil, err
	}
	l, ok := v.([]string)
	if !ok {
		return nil, wrongKind(name, "list", v)
	}
	return l, nil
}

// Headers returns a header preset entry.
func (t *Table) Headers(name string) (Headers, error) {
	v, err := t.Lookup(name)
	if err != nil {
		return nil, err
	}
	h, ok := v.(Headers)
	if !ok {
		return nil, wrongKind(name, "headers", v)
	}
	return h, nil
}

// Resolve follows a list of names, e.g. CONTROLLERS, and returns the values they refer to.
func (t *Table) Resolve(listName string) ([]interface{}, error) {
	names, err := t.Strings(listName)
	if err != nil {
		return nil, err
	}
	rv := make([]interface{}, 0, len(names))
	for _, name := range names {
		v, err := t.Lookup(name)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving %s", listName)
		}
		rv = append(rv, v)
	}
	return rv, nil
}

func wrongKind(name, want string, v interface{}) error {
	return errors.Wrapf(ErrWrongKind, "variable %s is %T, not %s", name, v, want)
}

func copyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case Headers:
		return val.Clone()
	case []string:
		return append([]string(nil), val...)
	default:
		return v
	}
}
