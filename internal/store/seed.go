package store

// SampleOrders is the fixed demo data set loaded when seeding is enabled.
// Ids are stable so repeated startups do not duplicate rows.
var SampleOrders = []CreateOrderParams{
	{
		ID:     "c2972b5b4eef349fb1e5cc3e3150a2b6",
		Name:   "Hannah Hungry",
		Phone:  "+319876543210",
		Items:  "1 x Hipster Burger, Fries",
		Status: "pending",
	},
	{
		ID:     "1b992e39dc55f0c79dbe613b3ad02f29",
		Name:   "Mike Madeater",
		Phone:  "+319876543211",
		Items:  "1 x Chef Special Mozzarella Pizza",
		Status: "delayed",
	},
	{
		ID:     "81dc9bdb52d04dc20036dbd8313ed055",
		Name:   "Don Cheetos",
		Phone:  "+319876543212",
		Items:  "1 x Awesome Cheese Platter",
		Status: "confirmed",
	},
}
