package migrations

import (
	"restaurant_ordering/internal/category"
)

type seedItem struct {
	name  string
	price float64
}

// defaultMenu is the sample menu loaded into empty category tables.
var defaultMenu = map[category.ID][]seedItem{
	category.Beverages: {
		{"Filter Coffee", 15},
		{"Tea", 15},
		{"Masala Tea", 20},
		{"Ginger Tea", 20},
		{"Lemon Tea", 20},
		{"Milk", 12},
		{"Badam Milk", 20},
		{"Horlicks", 15},
		{"Boost", 15},
		{"Complan", 15},
		{"Bournvita", 15},
		{"Mineral Water", 20},
	},
	category.ChatItem: {
		{"Bhel Puri", 50},
		{"Sev Puri", 65},
		{"Dahi Puri", 70},
		{"Masala Puri", 65},
		{"Nippat Masala", 55},
		{"Samosa Chat", 60},
		{"Pani Puri", 45},
		{"Kachori", 40},
		{"Papdi Chat", 50},
		{"Dahi Papdi Chat", 65},
		{"Pav Bhaji", 90},
		{"Cheese Pav Bhaji", 100},
		{"Extra Pav", 15},
		{"Girmit", 30},
		{"Pakoda", 35},
		{"Veg Sandwich", 35},
		{"Veg Grilled Sandwich", 50},
		{"Grilled Cheese Sandwich", 65},
		{"French Fries", 70},
		{"Peri-Peri Fries", 80},
		{"Aloo Bonda", 35},
		{"Dahi Vada", 35},
	},
	category.ChineseItems: {
		{"Veg Noodles", 150},
		{"Veg Hakka Noodles", 165},
		{"Schezwan Noodles", 175},
		{"Chilli Garlic Noodles", 170},
		{"Chinese Chopsuey", 185},
		{"American Chopsuey", 195},
		{"Paneer Noodles", 190},
		{"Mushroom Noodles", 180},
		{"Veg Fried Rice", 160},
		{"Paneer Fried Rice", 180},
		{"Mushroom Fried Rice", 175},
		{"Garlic Fried Rice", 165},
		{"Schezwan Fried Rice", 180},
		{"Triple Fried Rice", 210},
	},
	category.Curry: {
		{"Dal", 140},
		{"Dal Tadka", 160},
		{"Dal Makhani", 180},
		{"Malai Kofta", 200},
		{"Kofta Curry", 190},
		{"Veg Hyderabadi", 210},
		{"Veg Kohlapuri", 215},
		{"Aloo Gobi", 165},
		{"Aloo Matar", 150},
		{"Dum Aloo", 145},
		{"Navaratan Kurma", 190},
		{"Kaju Masala", 200},
		{"Mix Veg", 190},
		{"Paneer Butter Masala", 220},
		{"Paneer Tikka", 210},
		{"Palak Paneer", 195},
		{"Paneer Do Pyaza", 205},
		{"Paneer Tikka Masala", 215},
		{"Kaju Paneer", 220},
		{"Matar Paneer", 180},
		{"Paneer Lababdar", 210},
		{"Manchurian Gravy", 170},
		{"Veg Ball Manchurian", 190},
		{"Stuffed Capsicum", 150},
		{"Chana Masala", 160},
		{"Rajma", 145},
	},
	category.DosaItem: {
		{"Plain Dosa", 60},
		{"Masala Dosa", 80},
		{"Butter Masala Dosa", 95},
		{"Set Dosa", 70},
		{"Onion Dosa", 85},
		{"Paper Dosa", 95},
		{"Paper Masala Dosa", 105},
		{"Ghee Roast", 110},
		{"Rava Dosa", 100},
		{"Rava Onion Dosa", 120},
		{"Ragi Dosa", 80},
		{"Neer Dosa", 90},
		{"Open Butter Masala Dosa", 100},
		{"Rava Masala Dosa", 110},
		{"Rava Onion Masala Dosa", 120},
		{"Mysore Masala Dosa", 100},
	},
	category.FruitJuice: {
		{"Apple Juice", 70},
		{"Mosambi", 70},
		{"Sapota", 70},
		{"Muskmelon", 70},
		{"Watermelon", 80},
		{"Pineapple", 80},
		{"Mango", 85},
		{"Pomegranate", 80},
		{"Fresh Lime Soda", 70},
		{"Sweet Lassi", 90},
	},
	category.IceCreams: {
		{"Vanilla", 40},
		{"Chocolate", 50},
		{"Strawberry", 50},
		{"Butterscotch", 55},
		{"Mango", 60},
		{"Black Currant", 55},
		{"Rajbhog", 70},
		{"Tutti-Frutty", 60},
	},
	category.IndianBreads: {
		{"Roti", 25},
		{"Butter Roti", 30},
		{"Kulcha", 40},
		{"Butter Kulcha", 45},
		{"Naan", 50},
		{"Butter Naan", 55},
		{"Garlic Naan", 65},
		{"Rumali Roti", 60},
		{"Aloo Paratha", 90},
		{"Gobi Paratha", 90},
		{"Aloo Gobi Paratha", 100},
		{"Paneer Paratha", 115},
		{"Methi Roti", 40},
		{"Malabar Parota", 55},
		{"Chapati", 20},
		{"Roti Basket", 180},
	},
	category.MealCombo: {
		{"Mini Tiffin", 149},
		{"South Indian Meals", 169},
		{"North Indian Meals", 199},
		{"Roti Curry", 80},
		{"Chapathi Kurma", 70},
		{"Parota Curry", 80},
		{"Fried Rice + Gobi Manchurian", 115},
	},
	category.RiceItem: {
		{"Steamed Rice", 85},
		{"Ghee Rice", 100},
		{"Jeera Rice", 100},
		{"Peas Pulao", 120},
		{"Veg Pulao", 135},
		{"Kichidi", 120},
		{"Palak Rice", 105},
		{"Tawa Pulao", 140},
		{"Veg Biriyani", 160},
		{"Handi Biriyani", 170},
		{"Veg Hyderabadi Biriyani", 180},
		{"Paneer Biriyani", 195},
		{"Mushroom Biriyani", 185},
		{"Kashmiri Pulao", 150},
		{"Curd Rice", 90},
	},
	category.Soup: {
		{"Tomato Soup", 50},
		{"Hot n Sour Soup", 55},
		{"Manchow Soup", 65},
		{"Sweet Corn Soup", 70},
		{"Cream of Mushroom Soup", 90},
	},
	category.SouthIndian: {
		{"Idly", 25},
		{"Idly (2 nos.)", 40},
		{"Idly Vada", 80},
		{"Vada", 40},
		{"Khara Bath", 50},
		{"Kesari Bath", 35},
		{"Chow Chow Bath", 80},
		{"Upma", 40},
		{"Rice Bath", 55},
		{"Pongal", 45},
		{"Poori", 65},
		{"Manglore Buns", 40},
		{"Bisibele Bath", 60},
		{"Bonda Soup", 40},
		{"Rava Idly", 50},
		{"Thatte Idly", 40},
		{"Pudi Idly", 35},
	},
	category.Starters: {
		{"Masala Papad", 30},
		{"Roasted Masala Papad", 25},
		{"Gobi Munchurian", 120},
		{"Gobi 65", 100},
		{"Gobi Pepper Dry", 110},
		{"Baby Corn Munchurian", 110},
		{"Baby Corn Pepper Dry", 125},
		{"Paneer Munchurian", 135},
		{"Paneer 65", 120},
		{"Chilli Paneer", 110},
		{"Paneer Pepper Dry", 110},
		{"Mushroom Munchurian", 125},
		{"Mushroom 65", 120},
		{"Mushroom Pepper Dry", 110},
		{"Mushroom Chilli", 135},
		{"Veg Spring Rolls", 120},
	},
	category.Sweets: {
		{"Gulab Jamun", 25},
		{"Rasgulla", 25},
		{"Carrot Halwa", 50},
		{"Payasam", 30},
		{"Mysore Pak", 40},
	},
}
