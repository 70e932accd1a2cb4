package httputil

import "github.com/gin-gonic/gin"

// WriteError はエラーレスポンスをGinレスポンスとして書き込む。
func WriteError(c *gin.Context, status int, message string) {
	c.JSON(status, NewErrorBody(message))
}

// AbortWithError はエラーレスポンスを書き込み、リクエスト処理を中断する。
func AbortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, NewErrorBody(message))
}
