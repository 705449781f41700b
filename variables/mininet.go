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

// Mininet
const (
	//BaseMAC1 - base mininet MAC address, switch DPIDs are derived from it
	BaseMAC1 = "00:4b:00:00:00:00"
	//BaseIP1 - base IP of mininet hosts
	BaseIP1 = "75.75.0.0"

	mininetTopoDir          = "MininetTopo/"
	librariesMininetTopoDir = "libraries/" + mininetTopoDir

	//CreateVlanTopologyFile - vlan topology script
	CreateVlanTopologyFile = "vlan_vtn_test.py"
	//CreateVlanTopologyFilePath - vlan topology script path
	CreateVlanTopologyFilePath = mininetTopoDir + CreateVlanTopologyFile
	//CreateFullymeshTopologyFile - full mesh topology script
	CreateFullymeshTopologyFile = "create_fullymesh.py"
	//CreateFullymeshTopologyFilePath - full mesh topology script path
	CreateFullymeshTopologyFilePath = librariesMininetTopoDir + CreateFullymeshTopologyFile
	//CreatePathpolicyTopologyFile - path policy topology script
	CreatePathpolicyTopologyFile = "topo-3sw-2host_multipath.py"
	//CreatePathpolicyTopologyFilePath - path policy topology script path
	CreatePathpolicyTopologyFilePath = mininetTopoDir + CreatePathpolicyTopologyFile
)
