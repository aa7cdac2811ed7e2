package openrtb2

import (
	"encoding/json"

	"github.com/adspec-go/adspec/util/jsonutil"
)

// 3.2.25 Object: SupplyChain
//
// This object is composed of a set of nodes where each node represents a specific entity that participates in the transacting of inventory.
// The entire chain of nodes from beginning to end represents all entities who are involved in the direct flow of payment for inventory.
// Detailed implementation examples can be found in the SupplyChain object specification.
type SupplyChain struct {

	// Attribute:
	//   complete
	// Type:
	//   integer; required
	// Description:
	//   Flag indicating whether the chain contains all nodes involved
	//   in the transaction leading back to the owner of the site, app
	//   or other medium of the inventory, where 0 = no, 1 = yes.
	Complete int8 `json:"complete"`

	// Attribute:
	//   nodes
	// Type:
	//   object array; required
	// Description:
	//   Array of SupplyChainNode objects in the order of the chain. In
	//   a complete supply chain, the first node represents the initial
	//   advertising system and seller ID involved in the transaction,
	//   i.e. the owner of the site, app, or other medium. In an
	//   incomplete supply chain, it represents the first known node.
	//   The last node represents the entity sending this bid request.
	Nodes []SupplyChainNode `json:"nodes"`

	// Attribute:
	//   ver
	// Type:
	//   string; required
	// Description:
	//   Version of the supply chain specification in use, in the
	//   format of "major.minor". For example, for version 1.0 of the
	//   specification, use the string "1.0".
	Ver string `json:"ver"`

	// Attribute:
	//   ext
	// Type:
	//   object
	// Description:
	//   Placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}

// Copy returns a deep copy of the chain. Writers that append their own node
// copy first so shared requests stay untouched.
func (s SupplyChain) Copy() SupplyChain {
	if s.Nodes != nil {
		nodes := make([]SupplyChainNode, len(s.Nodes))
		for i, node := range s.Nodes {
			nodes[i] = node.Copy()
		}
		s.Nodes = nodes
	}
	s.Ext = jsonutil.Clone(s.Ext)
	return s
}
