// Package mocks provides shared test doubles for the store, service and
// auth interfaces.
//
// Store and service mocks are built on testify/mock and are configured with
// On(...).Return(...). The auth doubles use function fields with default
// return values, which keeps middleware tests short:
//
//	jwtSvc := &mocks.MockJWTService{
//	    ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	        return &auth.Claims{UserID: userID}, nil
//	    },
//	}
package mocks
