package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rsabackend/src/bigint"
	"rsabackend/src/operations"
	"rsabackend/src/rsa"
	"rsabackend/src/types"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleKeyGen(c *gin.Context) {
	bits, err := strconv.Atoi(c.Param("len"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorRsp{Error: "key length must be a decimal integer"})
		return
	}

	res, err := operations.KeyGen(bits)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.KeyGenRsp{
		Keys: types.Keys{
			PublicKey:  res.PublicKey,
			PrivateKey: res.PrivateKey,
		},
		TimeTaken: res.Duration.Milliseconds(),
	})
}

func (s *Server) handleEncrypt(c *gin.Context) {
	var req types.EncryptReq
	if !bindJSON(c, &req) {
		return
	}

	res, err := operations.Encrypt(req.Message, req.PublicKey)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.EncryptRsp{
		Ciphertext: res.Ciphertext,
		TimeTaken:  res.Duration.Milliseconds(),
	})
}

func (s *Server) handleDecrypt(c *gin.Context) {
	var req types.DecryptReq
	if !bindJSON(c, &req) {
		return
	}

	res, err := operations.Decrypt(req.Ciphertext, req.PublicKey, req.PrivateKey)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DecryptRsp{
		Message:   res.Message,
		TimeTaken: res.Duration.Milliseconds(),
	})
}

func (s *Server) handleSign(c *gin.Context) {
	var req types.SignReq
	if !bindJSON(c, &req) {
		return
	}

	res, err := operations.Sign(req.Message, req.PublicKey, req.PrivateKey)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.SignRsp{
		MessageSigned: res.MessageSigned,
		TimeTaken:     res.Duration.Milliseconds(),
	})
}

func (s *Server) handleVerifySign(c *gin.Context) {
	var req types.VerifySignReq
	if !bindJSON(c, &req) {
		return
	}

	res, err := operations.Verify(req.Message, req.MessageSigned, req.PublicKey)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.VerifySignRsp{
		Verified:  res.Verified,
		TimeTaken: res.Duration.Milliseconds(),
	})
}

// bindJSON binds the request body, answering 400 itself on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorRsp{Error: "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}

// respondError maps core errors to status codes: malformed input is the
// client's fault, anything else is ours.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, bigint.ErrParse) ||
		errors.Is(err, rsa.ErrDecode) ||
		errors.Is(err, operations.ErrInvalid) {
		status = http.StatusBadRequest
	}
	c.JSON(status, types.ErrorRsp{Error: err.Error()})
}
