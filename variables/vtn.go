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

// VTN coordinator
const (
	//VTNC - coordinator address
	VTNC = "127.0.0.1"
	//VTNCPort - coordinator port
	VTNCPort = "8083"
	//VTNCPrefix - base URL of the coordinator
	VTNCPrefix = "http://" + VTNC + ":" + VTNCPort
	//VTNWebAPI - coordinator web API root
	VTNWebAPI = "/vtn-webapi"

	//CtrlsCreate - controller create path
	CtrlsCreate = "controllers.json"
	//Ctrls - controllers path
	Ctrls = "controllers"
	//SW - switches path
	SW = "switches"

	//VTNsCreate - vtn create path
	VTNsCreate = "vtns.json"
	//VTNs - vtns path
	VTNs = "vtns"

	//VBRsCreate - vbridge create path
	VBRsCreate = "vbridges.json"
	//VBRs - vbridges path
	VBRs = "vbridges"

	//VBRIfsCreate - vbridge interface create path
	VBRIfsCreate = "interfaces.json"
	//VBRIfs - vbridge interfaces path
	VBRIfs = "interfaces"

	//PortmapCreate - port map create path
	PortmapCreate = "portmap.json"
	//VlanmapCreate - vlan map create path
	VlanmapCreate = "vlanmaps.json"
	//Ports - port details path
	Ports = "ports/detail.json"

	//FlowlistsCreate - flow list create path
	FlowlistsCreate = "flowlists.json"
	//FlowlistEntriesCreate - flow list entry create path
	FlowlistEntriesCreate = "flowlistentries.json"
	//Flowlists - flow lists path
	Flowlists = "flowlists"

	//FlowfiltersCreate - flow filter create path
	FlowfiltersCreate = "flowfilters.json"
	//FlowfilterEntriesCreate - flow filter entry create path
	FlowfilterEntriesCreate = "flowfilterentries.json"
	//Flowfilters - inbound flow filters path
	Flowfilters = "flowfilters/in"
	//FlowfiltersUpdate - flow filter entries update path
	FlowfiltersUpdate = "flowfilterentries"
)

// VTNCHeaders returns the headers the coordinator expects, credentials included.
func VTNCHeaders() Headers {
	return Headers{
		"Content-Type": "application/json",
		"username":     "admin",
		"password":     "adminpass",
	}
}
