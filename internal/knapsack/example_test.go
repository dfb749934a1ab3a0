package knapsack_test

import (
	"fmt"

	"github.com/agbru/daakit/internal/knapsack"
)

func ExampleFractional() {
	items := []knapsack.FractionalItem{
		{Weight: 10, Profit: 60},
		{Weight: 20, Profit: 100},
		{Weight: 30, Profit: 120},
	}

	res, err := knapsack.Fractional(items, 50)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.0f\n", res.Profit)
	// Output: 240
}

func ExampleZeroOne() {
	items := []knapsack.Item{
		{Weight: 10, Profit: 60},
		{Weight: 20, Profit: 100},
		{Weight: 30, Profit: 120},
	}

	profit, err := knapsack.ZeroOne(items, 50)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(profit)
	// Output: 220
}

func ExampleTable_Selected() {
	items := []knapsack.Item{
		{Weight: 10, Profit: 60},
		{Weight: 20, Profit: 100},
		{Weight: 30, Profit: 120},
	}

	table, _ := knapsack.BuildTable(items, 50)
	fmt.Println(table.Profit(), table.Selected())
	// Output: 220 [1 2]
}
