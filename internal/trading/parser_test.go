package trading

import "testing"

func TestParseCSV(t *testing.T) {
	raw := `Activity Date,Description,Trans Code,Quantity,Price,Amount
1/2/2024,ACH Deposit,,0,0,"$500.00"
1/3/2024,AAPL 1/19/2024 Call $150.00,BTO,1,1.25,($125.00)

1/10/2024,AAPL 1/19/2024 Call $150.00,STC,1,2.00,$200.00
1/11/2024,,STC,not-a-number,,
`

	transactions, err := ParseCSV(raw)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}
	if len(transactions) != 4 {
		t.Fatalf("expected 4 transactions, got %d", len(transactions))
	}

	first := transactions[0]
	if first.Date != "1/2/2024" || first.Description != "ACH Deposit" || first.Amount != "$500.00" {
		t.Errorf("unexpected first transaction: %+v", first)
	}

	second := transactions[1]
	if second.TransCode != "BTO" || second.Quantity != 1 || second.Price != 1.25 {
		t.Errorf("unexpected second transaction: %+v", second)
	}
	if ParseAmount(second.Amount) != -125 {
		t.Errorf("expected parenthesized amount to parse to -125, got %v", ParseAmount(second.Amount))
	}

	// Malformed row degrades to defaults instead of being rejected.
	last := transactions[3]
	if last.Description != "" || last.Quantity != 0 || last.Price != 0 {
		t.Errorf("expected defaulted fields, got %+v", last)
	}
	if last.Amount != "$0.00" {
		t.Errorf("expected missing amount to default to $0.00, got %q", last.Amount)
	}
}

func TestParseCSV_HeaderDriven(t *testing.T) {
	// Column order must not matter.
	raw := `Amount,Trans Code,Activity Date,Description,Price,Quantity
$10.00,STC,2/1/2024,SPY 12/15/2023 put $430,0.10,1
`
	transactions, err := ParseCSV(raw)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}
	if len(transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(transactions))
	}
	got := transactions[0]
	if got.Amount != "$10.00" || got.TransCode != "STC" || got.Date != "2/1/2024" {
		t.Errorf("columns resolved by position, not header: %+v", got)
	}
}

func TestParseCSV_Empty(t *testing.T) {
	for _, raw := range []string{"", "Activity Date,Description,Trans Code,Quantity,Price,Amount\n"} {
		transactions, err := ParseCSV(raw)
		if err != nil {
			t.Fatalf("ParseCSV(%q) returned error: %v", raw, err)
		}
		if len(transactions) != 0 {
			t.Errorf("ParseCSV(%q) = %d transactions, want 0", raw, len(transactions))
		}
	}
}

func TestParseCSV_PreservesOrder(t *testing.T) {
	raw := `Activity Date,Description,Trans Code,Quantity,Price,Amount
1/1/2024,first,STC,1,1,$1.00
1/2/2024,second,STC,1,1,$2.00
1/3/2024,third,STC,1,1,$3.00
`
	transactions, err := ParseCSV(raw)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, desc := range want {
		if transactions[i].Description != desc {
			t.Errorf("transaction %d = %q, want %q", i, transactions[i].Description, desc)
		}
	}
}
