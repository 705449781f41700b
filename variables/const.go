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

// Package variables - default endpoints, credentials, headers and API paths used by
// the controller system tests.
package variables

import "time"

const (
	//ODLSystemIP - default address of the controller under test
	ODLSystemIP = "127.0.0.1"
	//Controller - legacy alias of ODLSystemIP
	Controller = ODLSystemIP
	//Port - HTTP API port. Generic name kept as is.
	Port = "8080"
	//RestPort - secured REST layer port
	RestPort = "8282"
	//RestconfPort - RESTCONF layer port
	RestconfPort = "8181"
	//Prefix - base URL of the controller HTTP API
	Prefix = "http://" + Controller + ":" + Port
	//Prompt - generic shell prompt marker. Its meaning is unclear, kept as is.
	Prompt = ">"
	//Container - default container name
	Container = "default"
	//User - default REST user
	User = "admin"
	//Pwd - default REST password
	Pwd = "admin"
	//Password - placeholder password
	Password = "EMPTY"
	//Scope - default authentication scope
	Scope = "sdn"

	//TopoTreeLevel - tree topology level
	TopoTreeLevel = 2
	//TopoTreeDepth - tree topology depth
	TopoTreeDepth = 3
	//TopoTreeFanout - tree topology fanout
	TopoTreeFanout = 2

	//ODLSystemPassword - controller ssh password, empty means ssh keys are used
	ODLSystemPassword = ""
	//ControllerPassword - legacy alias of ODLSystemPassword
	ControllerPassword = ODLSystemPassword
	//ToolsSystemPassword - tools system ssh password, empty means ssh keys are used
	ToolsSystemPassword = ""
	//MininetPassword - legacy alias of ToolsSystemPassword
	MininetPassword = ToolsSystemPassword
	//KeyfilePass - passphrase of the ssh key file
	KeyfilePass = "any"
	//SSHKey - ssh key file name
	SSHKey = "id_rsa"

	//ControllerStopTimeout - max number of seconds a test waits for the controller to stop
	ControllerStopTimeout = 120
	//TopologyURL - network topology path fragment
	TopologyURL = "network-topology:network-topology/topology"
)

// Karaf shell
const (
	//KarafShellPort - karaf remote shell port
	KarafShellPort = "8101"
	//EscapeCharacter - ASCII escape, used in terminal color sequences
	EscapeCharacter = "\x1b"
	//KarafDetailedPrompt - colored karaf prompt suffix
	KarafDetailedPrompt = "@" + EscapeCharacter + "[0m" + EscapeCharacter + "[34mroot" + EscapeCharacter + "[0m>"
	//KarafPrompt - karaf prompt marker
	KarafPrompt = "opendaylight-user"
	//KarafUser - karaf shell user
	KarafUser = "karaf"
	//KarafPassword - karaf shell password
	KarafPassword = "karaf"
)

// BGP
const (
	//ODLBGPPort - controller BGP speaker port
	ODLBGPPort = "1790"
	//BGPToolPort - BGP test tool port
	BGPToolPort = "17900"
)

// VM environment prompts
const (
	//DefaultLinuxPrompt - shell prompt of test VMs
	DefaultLinuxPrompt = ">"
	//ODLSystemPrompt - shell prompt of the controller VM
	ODLSystemPrompt = DefaultLinuxPrompt
	//ControllerPrompt - legacy alias of ODLSystemPrompt
	ControllerPrompt = ODLSystemPrompt
	//ToolsSystemPrompt - shell prompt of the tools VM
	ToolsSystemPrompt = DefaultLinuxPrompt
	//MininetPrompt - legacy alias of ToolsSystemPrompt
	MininetPrompt = ToolsSystemPrompt
)

// NETCONF
const (
	//ODLNetconfPort - controller NETCONF port
	ODLNetconfPort = "2830"
	//ODLNetconfUser - NETCONF user
	ODLNetconfUser = "admin"
	//ODLNetconfPassword - NETCONF password
	ODLNetconfPassword = "admin"
	//ODLNetconfPrompt - NETCONF end of message marker
	ODLNetconfPrompt = "]]>]]>"
	//ODLNetconfNamespace - NETCONF base namespace
	ODLNetconfNamespace = "urn:ietf:params:xml:ns:netconf:base:1.0"
)

const (
	//ODLSystem1IP - name of OS variable holding the first controller address
	ODLSystem1IP EnvVar = "ODL_SYSTEM_1_IP"
	//ODLSystem2IP - name of OS variable holding the second controller address
	ODLSystem2IP EnvVar = "ODL_SYSTEM_2_IP"
	//ODLSystem3IP - name of OS variable holding the third controller address
	ODLSystem3IP EnvVar = "ODL_SYSTEM_3_IP"
)

// ControllerStopTimeoutDuration returns ControllerStopTimeout as time.Duration
func ControllerStopTimeoutDuration() time.Duration {
	return ControllerStopTimeout * time.Second
}

// ODLSystemIPList returns the environment variable names of the clustered controller addresses.
func ODLSystemIPList() []EnvVar {
	return []EnvVar{ODLSystem1IP, ODLSystem2IP, ODLSystem3IP}
}

// Controllers returns the table names of the controller addresses, in order.
// Only the first one is declared.
func Controllers() []string {
	return []string{"CONTROLLER", "CONTROLLER1", "CONTROLLER2"}
}

// Auth returns the default REST credentials.
func Auth() Credentials {
	return Credentials{User: "admin", Password: "admin"}
}
