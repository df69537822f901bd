// Package products fetches the product deals feed and turns it into a view
// state.
//
// The feed is a JSON document with a "products" array:
//
//	{"products": [{
//	  "id": 1,
//	  "title": "Lamp",
//	  "description": "A desk lamp",
//	  "image_url": "https://example.com/lamp.png",
//	  "regular_price": {"amount_in_cents": 1999, "currency_symbol": "$", "display_string": "$19.99"}
//	}]}
//
// [ViewState] maps every product to its own leaf section, kind "product",
// which [Component] draws at a fixed height.
package products
