package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "₹900.00", Money(900))
	assert.Equal(t, "₹1,000.00", Money(1000))
	assert.Equal(t, "₹1,00,000.00", Money(100000))
}

func TestDateLabel(t *testing.T) {
	assert.Equal(t, "08 Dec 2025", DateLabel("2025-12-08"))
	assert.Equal(t, "08 Dec 2025", DateLabel("2025-12-08T14:00:00Z"))
	assert.Equal(t, "someday", DateLabel("someday"))
	assert.Equal(t, "", DateLabel(""))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, StatusView{Label: "Delivered", Class: "delivered"}, Status("completed"))
	assert.Equal(t, StatusView{Label: "In Progress", Class: "in-progress"}, Status("Processing"))
	assert.Equal(t, StatusView{Label: "Pending", Class: "pending"}, Status(""))
}
