package serverless

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	fiberadapter "github.com/awslabs/aws-lambda-go-api-proxy/fiber"
)

var fiberLambda *fiberadapter.FiberLambda

// Handler is the AWS Lambda handler function.
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if fiberLambda == nil {
		fiberLambda = fiberadapter.New(GetApp())
	}

	return fiberLambda.ProxyWithContext(ctx, req)
}

// LambdaMain is the AWS Lambda entrypoint.
func LambdaMain() {
	lambda.Start(Handler)
}
