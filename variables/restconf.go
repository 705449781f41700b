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

// Common RESTCONF APIs
const (
	//ConfigAPI - RESTCONF config datastore root
	ConfigAPI = "/restconf/config"
	//OperationalAPI - RESTCONF operational datastore root
	OperationalAPI = "/restconf/operational"
	//ModulesAPI - RESTCONF modules list
	ModulesAPI = "/restconf/modules"

	//ConfigNodesAPI - inventory nodes in config datastore
	ConfigNodesAPI = ConfigAPI + "/opendaylight-inventory:nodes"
	//OperationalNodesAPI - inventory nodes in operational datastore
	OperationalNodesAPI = OperationalAPI + "/opendaylight-inventory:nodes"
	//OperationalNodesNetvirt - netvirt topology in operational datastore
	OperationalNodesNetvirt = OperationalAPI + "/" + TopologyURL + "/netvirt:1"
	//OperationalTopoAPI - network topology in operational datastore
	OperationalTopoAPI = OperationalAPI + "/network-topology:network-topology"
	//ConfigTopoAPI - network topology in config datastore
	ConfigTopoAPI = ConfigAPI + "/network-topology:network-topology"
	//ControllerConfigMount - controller-config NETCONF mount point
	ControllerConfigMount = ConfigAPI + "/" + TopologyURL + "/topology-netconf/node/controller-config/yang-ext:mount"
)

// OAuth2 tokens
const (
	//AuthTokenAPI - token issue path
	AuthTokenAPI = "/oauth2/token"
	//RevokeTokenAPI - token revocation path
	RevokeTokenAPI = "/oauth2/revoke"
)

// Group based policy
const (
	//GBPRegEPAPI - register endpoint RPC
	GBPRegEPAPI = "/restconf/operations/endpoint:register-endpoint"
	//GBPUnregEPAPI - unregister endpoint RPC
	GBPUnregEPAPI = "/restconf/operations/endpoint:unregister-endpoint"
	//GBPTenantsAPI - policy tenants
	GBPTenantsAPI = "/restconf/config/policy:tenants"
	//GBPTunnelsAPI - inventory nodes carrying tunnel config
	GBPTunnelsAPI = "/restconf/config/opendaylight-inventory:nodes"
)

// LISP flow mapping
const (
	//LFMRPCAPI - mapping service RPCs
	LFMRPCAPI = "/restconf/operations/mappingservice"
	//LFMRPCAPILI - mapping database RPCs
	LFMRPCAPILI = "/restconf/operations/lfm-mapping-database"
	//LFMSBRPCAPI - southbound RPCs
	LFMSBRPCAPI = "/restconf/operations/lisp-sb"
)
