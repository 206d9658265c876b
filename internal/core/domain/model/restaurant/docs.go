// Package restaurant defines the Restaurant aggregate and the Dish entity with
// its priced customizations. A dish carries declared options; an option either
// has a flat surcharge or a set of individually priced choices. Selections made
// by customers are matched against the declared options by name.
package restaurant
