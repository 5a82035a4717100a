package zpacker

// pairMarker and tupleMarker let the classifier recognize the compound
// record types without reflection on their type parameters. The encoder
// and decoder walk their exported fields in declaration order.
type (
	pairMarker  interface{ isPair() }
	tupleMarker interface{ isTuple() }
)

// Pair is an ordered 2-tuple. On the wire it carries a pair header
// followed by both element bodies.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (Pair[A, B]) isPair() {}

// PairOf builds a Pair from its elements.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Tuple2 through Tuple4 are fixed-arity ordered records. The arity is part
// of the static type and is checked against the wire header on decode.
type Tuple2[A, B any] struct {
	A A
	B B
}

func (Tuple2[A, B]) isTuple() {}

type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

func (Tuple3[A, B, C]) isTuple() {}

type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

func (Tuple4[A, B, C, D]) isTuple() {}
