package value

// Ordinal is an encoding table assigning each category its position.
type Ordinal struct {
	name  string
	order []string
	codes map[string]int
}

func newOrdinal(name string, order ...string) Ordinal {
	codes := make(map[string]int, len(order))
	for i, v := range order {
		codes[v] = i
	}

	return Ordinal{name: name, order: order, codes: codes}
}

func (o Ordinal) Name() string {
	return o.name
}

// Code returns the ordinal of category, or false when the table does not
// define it.
func (o Ordinal) Code(category string) (int, bool) {
	code, ok := o.codes[category]
	return code, ok
}

func (o Ordinal) Len() int {
	return len(o.order)
}

// Values returns the categories in code order.
func (o Ordinal) Values() []string {
	return append([]string(nil), o.order...)
}
