package dataset_test

import (
	"fmt"
	"os"

	"github.com/manningwu07/regression/dataset"
)

func ExampleGenerate() {
	X, y := dataset.Generate(dataset.NewSource(1))
	r, c := X.Dims()
	fmt.Println(r, c, len(y))
	// Output: 500 30 500
}

func ExampleDescribe() {
	if err := dataset.Describe(os.Stdout); err != nil {
		fmt.Println(err)
	}
	// Output:
	// The data was generated using the following code.
	//     Z = randn(500, 30)
	//     X = Z
	//     X[:,0] = 2000*Z[:,0] + 5000
	//     X[:,1] = 100*Z[:,1] - 20
	//     X[:,7] = 50*Z[:,7] + 120 - 10*Z[:,3]
	//     y = 2*X[:,0] - 3*X[:,1] + X[:,7] + 20*randn(500)
}

func ExampleFitOLS() {
	X, y := dataset.Generate(dataset.NewSource(1))
	beta, err := dataset.FitOLS(X, y)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("w0=%.1f w1=%.1f\n", beta[1], beta[2])
	// Output: w0=2.0 w1=-3.0
}
