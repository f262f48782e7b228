package purchaseControllers

import (
	"net/http"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/commerce"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/common"
	"github.com/gin-gonic/gin"
)

// CheckoutRequest carries the payment method and the buyer's contact
// details. Phone and address are checked but not stored.
type CheckoutRequest struct {
	Method  string               `json:"method" binding:"required"` // card, cash or credit
	Phone   string               `json:"phone" binding:"required,max=15"`
	Address string               `json:"address" binding:"required,max=200"`
	Card    commerce.CardDetails `json:"card"`
}

// POST /user/checkout
func Checkout(engine *commerce.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := common.UserID(c)
		if !ok {
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		method, err := commerce.ParsePaymentMethod(req.Method)
		if err != nil {
			common.RespondError(c, err)
			return
		}

		result, err := engine.Checkout(c.Request.Context(), userID, method, req.Card)
		if err != nil {
			common.RespondError(c, err)
			return
		}

		if result.AllOwned {
			c.JSON(http.StatusOK, gin.H{
				"warning": "Every product in the cart is already in your library",
				"totals":  result.Totals,
				"missing": result.Missing,
			})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Purchase completed",
			"purchase": result.Purchase,
			"totals":   result.Totals,
			"missing":  result.Missing,
		})
	}
}
