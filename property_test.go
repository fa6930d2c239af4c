package orgbook

import "testing"

func TestProperties_AddValidation(t *testing.T) {
	testCases := []struct {
		name     string
		property Property
		wantErr  bool
	}{
		{name: "valid immovable", property: Property{Name: "villa", Category: PropertyImmovable, PriceFrom: USD(500000), PriceTo: USD(600000)}},
		{name: "valid movable", property: Property{Name: "sultan", Category: PropertyMovable, PriceFrom: USD(20000), PriceTo: USD(20000)}},
		{name: "empty name", property: Property{Category: PropertyMovable}, wantErr: true},
		{name: "unknown category", property: Property{Name: "x", Category: "floating"}, wantErr: true},
		{name: "inverted range", property: Property{Name: "x", Category: PropertyMovable, PriceFrom: USD(100), PriceTo: USD(50)}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var ps Properties
			_, err := ps.Add(tc.property)
			if tc.wantErr != (err != nil) {
				t.Errorf("Add() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestProperties_ByCategory(t *testing.T) {
	var ps Properties
	for _, p := range []Property{
		{Name: "villa", Category: PropertyImmovable},
		{Name: "sultan", Category: PropertyMovable},
		{Name: "garage", Category: PropertyImmovable},
	} {
		if _, err := ps.Add(p); err != nil {
			t.Fatalf("Add(%q) failed: %v", p.Name, err)
		}
	}

	var names []string
	for p := range ps.ByCategory(PropertyImmovable) {
		names = append(names, p.Name)
	}
	if len(names) != 2 || names[0] != "villa" || names[1] != "garage" {
		t.Errorf("ByCategory(immovable) = %v, want [villa garage]", names)
	}
}
