package grammar

// Expression is a flat run of units joined by binary operators.
// Example: A + B * (C - D)
type Expression struct {
	Head *Unit     `parser:"@@"`
	Tail []*OpUnit `parser:"@@*"`
}

// OpUnit is an operator followed by its right-hand unit.
type OpUnit struct {
	Operator string `parser:"@Operator"`
	Unit     *Unit  `parser:"@@"`
}

// Unit is a single operand or a parenthesised sub-expression.
type Unit struct {
	Operand string      `parser:"  @Operand"`
	Group   *Expression `parser:"| LParen @@ RParen"`
}
