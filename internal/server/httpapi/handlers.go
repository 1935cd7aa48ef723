package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cloudtracker/internal/common"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		return
	}

	_, err := s.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		case errors.Is(err, common.ErrorAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
		default:
			s.logger.Error(c.Request.Context(), "registration failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User registered successfully"})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		s.logger.Error(c.Request.Context(), "login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) handlePut(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	err = s.documents.Put(c.Request.Context(), c.GetString(userIDKey), c.Param("key"), json.RawMessage(body))
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
			return
		}
		s.logger.Error(c.Request.Context(), "put failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleGet(c *gin.Context) {
	value, err := s.documents.Get(c.Request.Context(), c.GetString(userIDKey), c.Param("key"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Key not found"})
			return
		}
		s.logger.Error(c.Request.Context(), "get failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failed"})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", value)
}

func (s *Server) handleList(c *gin.Context) {
	keys, err := s.documents.List(c.Request.Context(), c.GetString(userIDKey))
	if err != nil {
		s.logger.Error(c.Request.Context(), "list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"keys": keys})
}

func (s *Server) handleDelete(c *gin.Context) {
	err := s.documents.Delete(c.Request.Context(), c.GetString(userIDKey), c.Param("key"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Key not found"})
			return
		}
		s.logger.Error(c.Request.Context(), "delete failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
