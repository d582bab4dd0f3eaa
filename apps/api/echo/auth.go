package echoapi

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/bweni/core"
	"github.com/trezcool/bweni/core/auth"
)

const jwtContextKey = "principalToken"

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	OrigIssuedAt int64  `json:"oriat,omitempty"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	IsAdmin      bool   `json:"is_admin,omitempty"`   // -> ADMIN PORTAL
	StudentID    string `json:"student_id,omitempty"` // -> STUDENT PORTAL
}

func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    jwtContextKey,
		Claims:        new(Claims),
	}
}

// GetPrincipalClaims builds the Claims a token carries for a principal.
func GetPrincipalClaims(conf *core.Config, p auth.Principal, origIat ...int64) *Claims {
	now := time.Now()
	nownix := now.Unix()

	var oriat int64
	if len(origIat) > 0 {
		oriat = origIat[0]
	} else {
		oriat = nownix
	}

	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			ExpiresAt: now.Add(conf.Auth.JWTExpirationDelta).Unix(),
			IssuedAt:  nownix,
		},
		OrigIssuedAt: oriat,
	}
	switch p := p.(type) {
	case auth.Admin:
		claims.Subject = p.ID
		claims.Name = p.Name
		claims.Email = p.Email
		claims.IsAdmin = true
	case auth.Student:
		claims.Subject = p.ID
		claims.Name = p.Name
		claims.Email = p.Email
		claims.StudentID = p.StudentID
	}
	return claims
}

// Principal rebuilds the sealed principal a token was minted for.
func (c Claims) Principal() auth.Principal {
	if c.IsAdmin {
		return auth.Admin{ID: c.Subject, Name: c.Name, Email: c.Email}
	}
	return auth.Student{ID: c.Subject, Name: c.Name, Email: c.Email, StudentID: c.StudentID}
}

// GenerateToken generates a signed JWT token string representing the Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(middleware.AlgorithmHS256)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(jwtContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

func getContextPrincipal(ctx echo.Context) (auth.Principal, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return nil, err
	}
	return claims.Principal(), nil
}

type authApi struct {
	deps ServerDeps
}

func registerAuthAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := authApi{deps: deps}

	ag := g.Group("/auth")
	ag.POST("/login", api.login)

	authed := ag.Group("", jwt)
	authed.POST("/token-refresh", api.refreshToken)
}

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.deps.Validate, api.deps.Translator); err != nil {
		return err
	}

	session, err := api.deps.AuthSvc.Login(data.Email, data.Password)
	if err != nil {
		return err
	}
	p, _ := session.Principal()

	token, err := GenerateToken(api.deps.Conf, GetPrincipalClaims(api.deps.Conf, p))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		Name:    p.DisplayName(),
		Screens: auth.Screens(p),
	})
}

func (api *authApi) refreshToken(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	// check if refresh has not expired
	expTime := time.Unix(claims.OrigIssuedAt, 0).Add(api.deps.Conf.Auth.JWTRefreshExpirationDelta)
	if time.Now().After(expTime) {
		return errRefreshExpired
	}

	newClaims := GetPrincipalClaims(api.deps.Conf, claims.Principal(), claims.OrigIssuedAt)
	token, err := GenerateToken(api.deps.Conf, newClaims)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}
