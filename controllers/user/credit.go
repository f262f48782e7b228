package userControllers

import (
	"net/http"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/commerce"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/common"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TopUpInput struct {
	Amount decimal.Decimal      `json:"amount"`
	Card   commerce.CardDetails `json:"card"`
}

// POST /user/credit
func TopUpCredit(engine *commerce.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := common.UserID(c)
		if !ok {
			return
		}

		var input TopUpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		balance, err := engine.TopUpCredit(c.Request.Context(), userID, input.Amount, input.Card)
		if err != nil {
			common.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Credit added", "credit": balance})
	}
}
