package services

import (
	"fmt"
	"strings"
	"unicode"

	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/bwmarrin/snowflake"
)

const seedPrefixLen = 3

type idGenerator struct {
	node *snowflake.Node
}

// NewIDGenerator creates a snowflake backed IDGeneratorSvc for the given node (0-1023).
func NewIDGenerator(nodeID int64) (portssvc.IDGeneratorSvc, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create id generator node %d: %w", nodeID, err)
	}
	return &idGenerator{node: node}, nil
}

var _ portssvc.IDGeneratorSvc = (*idGenerator)(nil)

// GenID prefixes a snowflake id with up to three upper-case letters taken from seed.
func (g *idGenerator) GenID(seed string) string {
	var prefix strings.Builder
	for _, r := range seed {
		if prefix.Len() == seedPrefixLen {
			break
		}
		if r <= unicode.MaxASCII && unicode.IsLetter(r) {
			prefix.WriteRune(unicode.ToUpper(r))
		}
	}
	return prefix.String() + g.node.Generate().String()
}

func (g *idGenerator) GenTransactionID(bankID, accountID string) string {
	return "TXN" + bankID + accountID + g.node.Generate().String()
}
