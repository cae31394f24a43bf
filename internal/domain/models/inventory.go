package models

// Inventory is the ordered, in-memory collection of shoes for one session.
// It is owned by the menu loop and never synced to disk on its own.
type Inventory struct {
	shoes []*Shoe
}

// NewInventory returns an empty inventory, optionally seeded with shoes.
func NewInventory(shoes ...Shoe) *Inventory {
	inv := &Inventory{}
	for _, s := range shoes {
		inv.Append(s)
	}
	return inv
}

// Append adds a copy of the shoe to the end of the inventory and returns the stored record.
func (i *Inventory) Append(s Shoe) *Shoe {
	stored := s
	i.shoes = append(i.shoes, &stored)
	return &stored
}

// Len reports the number of records.
func (i *Inventory) Len() int { return len(i.shoes) }

// IsEmpty reports whether the inventory holds no records.
func (i *Inventory) IsEmpty() bool { return len(i.shoes) == 0 }

// Records exposes the stored records in insertion order. Mutating a record
// through the returned pointer changes the inventory.
func (i *Inventory) Records() []*Shoe {
	out := make([]*Shoe, len(i.shoes))
	copy(out, i.shoes)
	return out
}

// Snapshot copies the current record values in order, e.g. for persistence.
func (i *Inventory) Snapshot() []Shoe {
	out := make([]Shoe, 0, len(i.shoes))
	for _, s := range i.shoes {
		out = append(out, *s)
	}
	return out
}
