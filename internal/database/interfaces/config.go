// Copyright (c) 2026 Waveline Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package interfaces

// MongoDBConfig represents MongoDB specific configuration
type MongoDBConfig struct {
	Host                   string
	Port                   int
	Username               string
	Password               string
	AuthDatabase           string
	ReplicaSet             string
	SSL                    bool
	ConnectTimeout         int
	SocketTimeout          int
	MaxPoolSize            int
	MinPoolSize            int
	MaxIdleTime            int
	ServerSelectionTimeout int
}
