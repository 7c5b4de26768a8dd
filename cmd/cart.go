// Package cmd implements the command-line interface for codeit.
package cmd

import (
	"context"
	"fmt"

	"github.com/codeit-cli/codeit/cart"
	"github.com/codeit-cli/codeit/color"
	"github.com/codeit-cli/codeit/icon"
	"github.com/codeit-cli/codeit/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cartCmd)
}

// cartCmd prints the server-side cart contents.
var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Display the contents of your cart",
	Run: func(cmd *cobra.Command, args []string) {
		bag := cart.New(requireClient())
		handleErr(bag.Refresh(context.Background()))

		items := bag.Items()
		if len(items) == 0 {
			fmt.Println(style.Faint("the cart is empty"))
			return
		}

		printCourses(items)
		fmt.Printf("\n%s ₹%.2f\n", style.Bold("Total:"), bag.Total())
	},
}

func init() {
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
}

// cartAddCmd puts a course into the cart by id.
var cartAddCmd = &cobra.Command{
	Use:   "add [course-id]",
	Short: "Add a course to your cart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(requireClient().AddToCart(context.Background(), args[0]))
		fmt.Printf("%s added %s to the cart\n", icon.Get(icon.Success), style.Fg(color.Yellow)(args[0]))
	},
}

// cartRemoveCmd takes a course out of the cart by id.
var cartRemoveCmd = &cobra.Command{
	Use:     "remove [course-id]",
	Short:   "Remove a course from your cart",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(requireClient().RemoveFromCart(context.Background(), args[0]))
		fmt.Printf("%s removed %s from the cart\n", icon.Get(icon.Success), style.Fg(color.Yellow)(args[0]))
	},
}
