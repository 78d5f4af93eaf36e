package solo

import (
	"context"

	"github.com/ib-77/lambda3/pkg/lambda"
)

func Succeed[T any](input T) lambda.Result[T] {
	return lambda.Success(input)
}

func Fail[T any](err error) lambda.Result[T] {
	return lambda.Fail[T](err)
}

func Map[In any, Out any](ctx context.Context,
	input lambda.Result[In],
	onSuccess func(ctx context.Context, r In) Out) lambda.Result[Out] {

	if input.IsSuccess() {
		return lambda.Success(onSuccess(ctx, input.Result()))
	}
	return lambda.Fail[Out](input.Err())
}

func Try[In any, Out any](ctx context.Context, input lambda.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) lambda.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return lambda.Fail[Out](err)
		}

		return lambda.Success(out)
	}

	return lambda.Fail[Out](input.Err())
}

func Finally[In, Out any](ctx context.Context, input lambda.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}
