package main

import "github.com/sorumat/sorumat-go/pkg/serverless"

func main() {
	serverless.LambdaMain()
}
