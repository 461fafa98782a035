package term

// Connector identifies the compound-term connector.
type Connector int

const (
	ConnNone Connector = iota
	ConnConjunction
	ConnDisjunction
	ConnProduct
	ConnParallelEvents
	ConnSequentialEvents
	ConnIntensionalIntersection
	ConnExtensionalIntersection
	ConnIntensionalDifference
	ConnExtensionalDifference
	ConnIntensionalImage
	ConnExtensionalImage
	ConnExtensionalSet
	ConnIntensionalSet
	ConnNegation
)

// Arity classifies how many children a connector accepts.
type Arity int

const (
	ArityMultiple Arity = iota // 2..N, order-dependent unless Commutative
	ArityDouble                // exactly 2
	AritySingle                // exactly 1
)

// connectorMeta describes the symbol, arity rule, and commutativity of a
// connector. This is the "connector metadata" spec.md §3 calls for.
type connectorMeta struct {
	symbol      string
	openBracket string
	arity       Arity
	commutative bool
	temporal    bool
}

var connectorTable = map[Connector]connectorMeta{
	ConnConjunction:             {symbol: "&&", openBracket: "(", arity: ArityMultiple, commutative: true},
	ConnDisjunction:             {symbol: "||", openBracket: "(", arity: ArityMultiple, commutative: true},
	ConnProduct:                 {symbol: "*", openBracket: "(", arity: ArityMultiple, commutative: false},
	ConnParallelEvents:          {symbol: "&|", openBracket: "(", arity: ArityMultiple, commutative: true, temporal: true},
	ConnSequentialEvents:        {symbol: "&/", openBracket: "(", arity: ArityMultiple, commutative: false, temporal: true},
	ConnIntensionalIntersection: {symbol: "|", openBracket: "(", arity: ArityMultiple, commutative: true},
	ConnExtensionalIntersection: {symbol: "&", openBracket: "(", arity: ArityMultiple, commutative: true},
	ConnIntensionalDifference:   {symbol: "-", openBracket: "(", arity: ArityDouble, commutative: false},
	ConnExtensionalDifference:   {symbol: "~", openBracket: "(", arity: ArityDouble, commutative: false},
	ConnIntensionalImage:        {symbol: "/", openBracket: "(", arity: ArityMultiple, commutative: false},
	ConnExtensionalImage:        {symbol: "\\", openBracket: "(", arity: ArityMultiple, commutative: false},
	ConnExtensionalSet:          {symbol: ",", openBracket: "{", arity: ArityMultiple, commutative: true},
	ConnIntensionalSet:          {symbol: ",", openBracket: "[", arity: ArityMultiple, commutative: true},
	ConnNegation:                {symbol: "--", openBracket: "(", arity: AritySingle, commutative: false},
}

// IsCommutative reports whether child order is semantically irrelevant.
func (c Connector) IsCommutative() bool { return connectorTable[c].commutative }

// IsTemporal reports whether the connector carries a temporal ordering.
func (c Connector) IsTemporal() bool { return connectorTable[c].temporal }

// Arity returns the connector's arity rule.
func (c Connector) Arity() Arity { return connectorTable[c].arity }

// ValidArity reports whether n children satisfies this connector's arity rule.
func (c Connector) ValidArity(n int) bool {
	switch connectorTable[c].arity {
	case AritySingle:
		return n == 1
	case ArityDouble:
		return n == 2
	default:
		return n >= 2
	}
}

func (c Connector) String() string { return connectorTable[c].symbol }

var bracketConnectorSymbols = func() map[string]Connector {
	m := make(map[string]Connector, len(connectorTable))
	for c, meta := range connectorTable {
		if meta.openBracket == "(" {
			m[meta.symbol] = c
		}
	}
	return m
}()

// ConnectorFromSymbol looks up the paren-bracketed connector for a surface
// symbol (e.g. "&&", "*", "--"). Set connectors ({} and []) have no symbol
// of their own; callers distinguish them by the bracket character instead.
func ConnectorFromSymbol(sym string) (Connector, bool) {
	c, ok := bracketConnectorSymbols[sym]
	return c, ok
}
