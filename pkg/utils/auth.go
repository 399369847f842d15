package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/campus-helpdesk/internal/domain/user"
	"github.com/linskybing/campus-helpdesk/pkg/types"
)

const (
	ClaimsKey = "claims"
	ActorKey  = "actor"
)

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, errors.New("token claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid token claims type")
	}

	return claims, nil
}

var GetActorFromContext = func(c *gin.Context) (user.Actor, error) {
	actorVal, exists := c.Get(ActorKey)
	if !exists {
		return user.Actor{}, errors.New("actor not found in context")
	}

	actor, ok := actorVal.(user.Actor)
	if !ok {
		return user.Actor{}, errors.New("invalid actor type")
	}

	return actor, nil
}

func ParseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return uint(id), nil
}
