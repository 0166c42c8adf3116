// Command newton demonstrates the univariate and multivariate Newton
// solvers on a sample quadratic. The univariate runs show the difference
// between the root target and the historical stationary-point target on the
// same function.
package main

import (
	"fmt"
	"log"

	"github.com/Jackyfirrest/newton-practice/multivariate"
	"github.com/Jackyfirrest/newton-practice/univariate"
)

func main() {
	f := univariate.ObjectiveFunc(func(x float64) float64 { return x*x - 2 })

	root, err := univariate.Optimize(f, 1.0, nil, &univariate.Newton{Target: univariate.TargetRoot})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("root of x^2 - 2:             %v (%v, %d iterations)\n",
		root.Loc, root.Status, root.Iterations)

	stat, err := univariate.Optimize(f, 1.0, nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("stationary point of x^2 - 2: %v (%v, %d iterations)\n",
		stat.Loc, stat.Status, stat.Iterations)

	bowl := multivariate.ObjectiveFunc(func(x []float64) float64 {
		return (x[0]-1)*(x[0]-1) + 2*(x[1]+0.5)*(x[1]+0.5)
	})
	min, err := multivariate.Optimize(bowl, []float64{5, 5}, nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("minimizer of bowl:           %v (%v, %d iterations)\n",
		min.Loc, min.Status, min.Iterations)
}
